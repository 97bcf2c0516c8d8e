package contract

import (
	"context"

	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *entity.Applicant) error
	Update(ctx context.Context, applicant *entity.Applicant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Applicant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) error
}
