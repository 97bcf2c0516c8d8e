package onboarding

import (
	"fmt"
	"math"
	"net/url"
)

// Stage is the backend-driven pointer into the onboarding track.
type Stage string

const (
	StageInitialScreening  Stage = "Initial Screening"
	StageInterview         Stage = "Interview"
	StageApplicationReview Stage = "Application Review"
)

// stageOrder fixes the progression; unknown stages resolve to the first one.
var stageOrder = []Stage{StageInitialScreening, StageInterview, StageApplicationReview}

type StepStatus string

const (
	StepCompleted  StepStatus = "completed"
	StepInProgress StepStatus = "in-progress"
	StepPending    StepStatus = "pending"
)

type SubstepStatus string

const (
	SubstepCompleted SubstepStatus = "completed"
	SubstepPending   SubstepStatus = "pending"
	SubstepTodo      SubstepStatus = "todo"
)

// ApplicationStatus is the status field a real backend writes; the track is
// derived from it on every render and never stored.
type ApplicationStatus struct {
	Stage                  Stage
	QuestionnaireCompleted bool
	QuestionnaireGraded    bool
}

// DefaultApplicationStatus is used when the profile carries no status yet:
// a fresh applicant sits at Initial Screening with the questionnaire open.
func DefaultApplicationStatus() ApplicationStatus {
	return ApplicationStatus{Stage: StageInitialScreening}
}

type Substep struct {
	Id          string
	Name        string
	Description string
	Status      SubstepStatus
}

type Step struct {
	Id          int
	Name        string
	Type        string
	Description string
	Status      StepStatus
	Substeps    []Substep
}

// CurrentStep pairs the unique in-progress step with its actionable
// substeps. A nil CurrentStep means every step is complete.
type CurrentStep struct {
	Step               Step
	IncompleteSubsteps []Substep
}

func stageIndex(s Stage) int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return 0
}

func stepStatusAt(position int, app ApplicationStatus) StepStatus {
	current := stageIndex(app.Stage)
	switch {
	case position < current:
		return StepCompleted
	case position == current:
		return StepInProgress
	default:
		return StepPending
	}
}

func questionnaireStatus(app ApplicationStatus) (SubstepStatus, string) {
	if !app.QuestionnaireCompleted {
		return SubstepTodo, "Complete the screening questionnaire so you can schedule an interview"
	}
	if !app.QuestionnaireGraded {
		return SubstepPending, "We are reviewing your questionnaire responses"
	}
	return SubstepCompleted, "Questionnaire completed and reviewed"
}

// Track derives the fixed three-step, six-substep onboarding table from the
// application status. Substep 1a is always completed: invitations only go
// out after an application has been submitted.
func Track(app ApplicationStatus) []Step {
	questionnaire, questionnaireDesc := questionnaireStatus(app)

	return []Step{
		{
			Id:          1,
			Name:        string(StageInitialScreening),
			Type:        "form",
			Description: "Application submission and initial review",
			Status:      stepStatusAt(0, app),
			Substeps: []Substep{
				{
					Id:          "1a",
					Name:        "Complete Application",
					Description: "Submit your initial application",
					Status:      SubstepCompleted,
				},
				{
					Id:          "1b",
					Name:        "Questionnaire",
					Description: questionnaireDesc,
					Status:      questionnaire,
				},
			},
		},
		{
			Id:          2,
			Name:        string(StageInterview),
			Type:        "calendly",
			Description: "Schedule and complete your interview",
			Status:      stepStatusAt(1, app),
			Substeps: []Substep{
				{
					Id:          "2a",
					Name:        "Schedule Interview",
					Description: "Book your interview time slot",
					Status:      SubstepPending,
				},
				{
					Id:          "2b",
					Name:        "Complete Interview",
					Description: "Attend your scheduled interview",
					Status:      SubstepPending,
				},
			},
		},
		{
			Id:          3,
			Name:        string(StageApplicationReview),
			Type:        "manual",
			Description: "Final review and decision",
			Status:      stepStatusAt(2, app),
			Substeps: []Substep{
				{
					Id:          "3a",
					Name:        "Final Review",
					Description: "Team reviews your complete application",
					Status:      SubstepPending,
				},
				{
					Id:          "3b",
					Name:        "Decision",
					Description: "Receive your application decision",
					Status:      SubstepPending,
				},
			},
		},
	}
}

// ProgressPercentage is round(100 * completed substeps / total substeps).
func ProgressPercentage(steps []Step) int {
	total := 0
	completed := 0
	for _, step := range steps {
		for _, substep := range step.Substeps {
			total++
			if substep.Status == SubstepCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// FindCurrentStep returns the unique in-progress step and its todo/pending
// substeps; nil when no step is in progress.
func FindCurrentStep(steps []Step) *CurrentStep {
	for _, step := range steps {
		if step.Status != StepInProgress {
			continue
		}
		var incomplete []Substep
		for _, substep := range step.Substeps {
			if substep.Status == SubstepTodo || substep.Status == SubstepPending {
				incomplete = append(incomplete, substep)
			}
		}
		return &CurrentStep{Step: step, IncompleteSubsteps: incomplete}
	}
	return nil
}

// QuestionnaireURL builds the external form link for a contact id, falling
// back to the literal "test" placeholder when the profile has none.
func QuestionnaireURL(formBaseURL, contactID string) string {
	if contactID == "" {
		contactID = "test"
	}
	return fmt.Sprintf("%s?contact_id=%s", formBaseURL, url.QueryEscape(contactID))
}
