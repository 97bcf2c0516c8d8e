package onboarding

import (
	"testing"
)

func substepByID(t *testing.T, steps []Step, id string) Substep {
	t.Helper()
	for _, step := range steps {
		for _, substep := range step.Substeps {
			if substep.Id == id {
				return substep
			}
		}
	}
	t.Fatalf("substep %q not found", id)
	return Substep{}
}

func TestTrackQuestionnaireSubstep(t *testing.T) {
	tests := []struct {
		name       string
		app        ApplicationStatus
		wantStatus SubstepStatus
	}{
		{
			name:       "fresh applicant has questionnaire todo",
			app:        DefaultApplicationStatus(),
			wantStatus: SubstepTodo,
		},
		{
			name: "submitted but ungraded is pending",
			app: ApplicationStatus{
				Stage:                  StageInitialScreening,
				QuestionnaireCompleted: true,
			},
			wantStatus: SubstepPending,
		},
		{
			name: "graded is completed",
			app: ApplicationStatus{
				Stage:                  StageInitialScreening,
				QuestionnaireCompleted: true,
				QuestionnaireGraded:    true,
			},
			wantStatus: SubstepCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Track(tt.app)
			got := substepByID(t, steps, "1b").Status
			if got != tt.wantStatus {
				t.Errorf("substep 1b status = %q, want %q", got, tt.wantStatus)
			}
		})
	}
}

func TestTrackShape(t *testing.T) {
	steps := Track(DefaultApplicationStatus())

	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	total := 0
	for _, step := range steps {
		if len(step.Substeps) != 2 {
			t.Errorf("step %d has %d substeps, want 2", step.Id, len(step.Substeps))
		}
		total += len(step.Substeps)
	}
	if total != 6 {
		t.Fatalf("total substeps = %d, want 6", total)
	}

	// The application substep is always done: invitations only go out after
	// an application is submitted.
	if got := substepByID(t, steps, "1a").Status; got != SubstepCompleted {
		t.Errorf("substep 1a status = %q, want %q", got, SubstepCompleted)
	}
}

func TestStepStatusProgression(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		want  [3]StepStatus
	}{
		{
			name:  "initial screening",
			stage: StageInitialScreening,
			want:  [3]StepStatus{StepInProgress, StepPending, StepPending},
		},
		{
			name:  "interview",
			stage: StageInterview,
			want:  [3]StepStatus{StepCompleted, StepInProgress, StepPending},
		},
		{
			name:  "application review",
			stage: StageApplicationReview,
			want:  [3]StepStatus{StepCompleted, StepCompleted, StepInProgress},
		},
		{
			name:  "unknown stage falls back to first",
			stage: Stage("Mystery"),
			want:  [3]StepStatus{StepInProgress, StepPending, StepPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Track(ApplicationStatus{Stage: tt.stage})
			for i, step := range steps {
				if step.Status != tt.want[i] {
					t.Errorf("step %d status = %q, want %q", step.Id, step.Status, tt.want[i])
				}
			}
		})
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name string
		app  ApplicationStatus
		want int
	}{
		{
			name: "fresh applicant",
			app:  DefaultApplicationStatus(),
			want: 17, // 1 of 6
		},
		{
			name: "questionnaire submitted but ungraded",
			app: ApplicationStatus{
				Stage:                  StageInitialScreening,
				QuestionnaireCompleted: true,
			},
			want: 17,
		},
		{
			name: "questionnaire graded",
			app: ApplicationStatus{
				Stage:                  StageInitialScreening,
				QuestionnaireCompleted: true,
				QuestionnaireGraded:    true,
			},
			want: 33, // 2 of 6
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercentage(Track(tt.app))
			if got != tt.want {
				t.Errorf("ProgressPercentage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgressNeverDecreasesAcrossQuestionnaireFlow(t *testing.T) {
	order := []ApplicationStatus{
		{Stage: StageInitialScreening},
		{Stage: StageInitialScreening, QuestionnaireCompleted: true},
		{Stage: StageInitialScreening, QuestionnaireCompleted: true, QuestionnaireGraded: true},
	}

	prev := -1
	for i, app := range order {
		got := ProgressPercentage(Track(app))
		if got < prev {
			t.Fatalf("progress decreased at stage %d: %d -> %d", i, prev, got)
		}
		prev = got
	}
}

func TestFindCurrentStep(t *testing.T) {
	t.Run("fresh applicant works on step one", func(t *testing.T) {
		current := FindCurrentStep(Track(DefaultApplicationStatus()))
		if current == nil {
			t.Fatal("expected a current step")
		}
		if current.Step.Id != 1 {
			t.Errorf("current step id = %d, want 1", current.Step.Id)
		}
		if len(current.IncompleteSubsteps) != 1 || current.IncompleteSubsteps[0].Id != "1b" {
			t.Errorf("incomplete substeps = %+v, want just 1b", current.IncompleteSubsteps)
		}
	})

	t.Run("interview stage surfaces both interview substeps", func(t *testing.T) {
		current := FindCurrentStep(Track(ApplicationStatus{Stage: StageInterview}))
		if current == nil {
			t.Fatal("expected a current step")
		}
		if current.Step.Id != 2 {
			t.Errorf("current step id = %d, want 2", current.Step.Id)
		}
		if len(current.IncompleteSubsteps) != 2 {
			t.Errorf("incomplete substeps = %+v, want 2a and 2b", current.IncompleteSubsteps)
		}
	})
}

func TestQuestionnaireURL(t *testing.T) {
	base := "https://forms.example.com/screening"

	tests := []struct {
		name      string
		contactID string
		want      string
	}{
		{
			name:      "with contact id",
			contactID: "42",
			want:      base + "?contact_id=42",
		},
		{
			name:      "missing contact id falls back to placeholder",
			contactID: "",
			want:      base + "?contact_id=test",
		},
		{
			name:      "contact id is escaped",
			contactID: "a b&c",
			want:      base + "?contact_id=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuestionnaireURL(base, tt.contactID)
			if got != tt.want {
				t.Errorf("QuestionnaireURL = %q, want %q", got, tt.want)
			}
		})
	}
}
