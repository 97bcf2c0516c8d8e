package events

import "time"

// Event defines the contract for all portal events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "APPLICANT_SIGNED_IN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across the portal.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Session lifecycle event types.
const (
	TypeApplicantSignedUp  = "APPLICANT_SIGNED_UP"
	TypeApplicantSignedIn  = "APPLICANT_SIGNED_IN"
	TypeApplicantSignedOut = "APPLICANT_SIGNED_OUT"
)
