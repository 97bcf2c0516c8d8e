package entity

// ProfileRecord is the denormalized document written once at sign-up,
// keyed by the session's user id.
type ProfileRecord struct {
	ContactId       string
	ContactName     string
	SalesforceEmail string
	CreatedAt       string
	LastLogin       string

	// Screening status written by the backend when it starts grading.
	// Absent on fresh profiles; the dashboard falls back to defaults.
	ApplicationStatus      string
	QuestionnaireCompleted bool
	QuestionnaireGraded    bool
}
