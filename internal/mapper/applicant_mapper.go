package mapper

import (
	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/model"
)

type ApplicantMapper struct{}

func NewApplicantMapper() *ApplicantMapper {
	return &ApplicantMapper{}
}

func (m *ApplicantMapper) ToEntity(a *model.Applicant) *entity.Applicant {
	if a == nil {
		return nil
	}
	return &entity.Applicant{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		DisplayName:  a.DisplayName,
		Status:       entity.ApplicantStatus(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *ApplicantMapper) ToModel(a *entity.Applicant) *model.Applicant {
	if a == nil {
		return nil
	}
	return &model.Applicant{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		DisplayName:  a.DisplayName,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *ApplicantMapper) ToEntities(applicants []*model.Applicant) []*entity.Applicant {
	entities := make([]*entity.Applicant, len(applicants))
	for i, a := range applicants {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
