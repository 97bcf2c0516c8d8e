package implementation

import (
	"context"
	"errors"

	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/internal/model"
	"applicant-portal-be/internal/repository/contract"
	"applicant-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicantMapper
}

func NewApplicantRepository(db *gorm.DB) contract.ApplicantRepository {
	return &ApplicantRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicantMapper(),
	}
}

func (r *ApplicantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApplicantRepositoryImpl) Create(ctx context.Context, applicant *entity.Applicant) error {
	modelApplicant := r.mapper.ToModel(applicant)
	if err := r.db.WithContext(ctx).Create(modelApplicant).Error; err != nil {
		return err
	}
	*applicant = *r.mapper.ToEntity(modelApplicant)
	return nil
}

func (r *ApplicantRepositoryImpl) Update(ctx context.Context, applicant *entity.Applicant) error {
	modelApplicant := r.mapper.ToModel(applicant)
	if err := r.db.WithContext(ctx).Save(modelApplicant).Error; err != nil {
		return err
	}
	*applicant = *r.mapper.ToEntity(modelApplicant)
	return nil
}

func (r *ApplicantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Applicant, error) {
	var modelApplicant model.Applicant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelApplicant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelApplicant), nil
}

func (r *ApplicantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Applicant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicantRepositoryImpl) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&model.Applicant{}).
		Where("id = ?", id).
		Update("display_name", name).Error
}
