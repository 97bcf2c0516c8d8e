package dto

type SubstepResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type StepResponse struct {
	Id          int               `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Substeps    []SubstepResponse `json:"substeps"`
}

type CurrentStepResponse struct {
	Step               StepResponse      `json:"step"`
	IncompleteSubsteps []SubstepResponse `json:"incomplete_substeps"`
}

type ApplicantInfoResponse struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ContactId   string `json:"contact_id,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}

type DashboardResponse struct {
	Applicant          ApplicantInfoResponse `json:"applicant"`
	ProgressPercentage int                   `json:"progress_percentage"`
	Steps              []StepResponse        `json:"steps"`
	CurrentStep        *CurrentStepResponse  `json:"current_step,omitempty"`
	AllStepsComplete   bool                  `json:"all_steps_complete"`
	QuestionnaireURL   string                `json:"questionnaire_url"`
}
