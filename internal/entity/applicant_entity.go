package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApplicantStatus string

const (
	ApplicantStatusActive  ApplicantStatus = "active"
	ApplicantStatusBlocked ApplicantStatus = "blocked"
)

// Applicant is the credential record behind the Session Store. Display name
// and contact data live on the profile document, not here; DisplayName is the
// identity-provider copy set during provisioning.
type Applicant struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Status       ApplicantStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
