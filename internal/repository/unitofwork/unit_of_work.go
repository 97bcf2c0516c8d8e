package unitofwork

import (
	"context"

	"applicant-portal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ApplicantRepository() contract.ApplicantRepository
}
