package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"applicant-portal-be/internal/docstore"
	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/internal/onboarding"
	"applicant-portal-be/internal/pkg/logger"
	"applicant-portal-be/pkg/store"
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, session *store.Session) (*dto.DashboardResponse, error)
}

// dashboardService assembles the dashboard view for a session. The profile
// document is fetched once per session and memoized; a fetch failure degrades
// to a dashboard without contact data instead of an error page.
type dashboardService struct {
	docs          docstore.Store
	profileMapper *mapper.ProfileMapper
	profileCache  *cache.Cache
	log           logger.ILogger
	formBaseURL   string
}

func NewDashboardService(
	docs docstore.Store,
	profileMapper *mapper.ProfileMapper,
	log logger.ILogger,
	formBaseURL string,
	profileTTL time.Duration,
) IDashboardService {
	return &dashboardService{
		docs:          docs,
		profileMapper: profileMapper,
		profileCache:  cache.New(profileTTL, 10*time.Minute),
		log:           log,
		formBaseURL:   formBaseURL,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, session *store.Session) (*dto.DashboardResponse, error) {
	profile := s.fetchProfile(ctx, session)

	app := onboarding.DefaultApplicationStatus()
	if profile != nil && profile.ApplicationStatus != "" {
		app = onboarding.ApplicationStatus{
			Stage:                  onboarding.Stage(profile.ApplicationStatus),
			QuestionnaireCompleted: profile.QuestionnaireCompleted,
			QuestionnaireGraded:    profile.QuestionnaireGraded,
		}
	}

	steps := onboarding.Track(app)
	current := onboarding.FindCurrentStep(steps)

	contactID := ""
	response := &dto.DashboardResponse{
		Applicant:          s.applicantInfo(session, profile),
		ProgressPercentage: onboarding.ProgressPercentage(steps),
		Steps:              toStepResponses(steps),
		AllStepsComplete:   current == nil,
	}
	if profile != nil {
		contactID = profile.ContactId
	}
	response.QuestionnaireURL = onboarding.QuestionnaireURL(s.formBaseURL, contactID)
	if current != nil {
		response.CurrentStep = &dto.CurrentStepResponse{
			Step:               toStepResponse(current.Step),
			IncompleteSubsteps: toSubstepResponses(current.IncompleteSubsteps),
		}
	}
	return response, nil
}

// fetchProfile returns the memoized profile for the session, or nil when the
// document is missing or the store fails.
func (s *dashboardService) fetchProfile(ctx context.Context, session *store.Session) *entity.ProfileRecord {
	if cached, found := s.profileCache.Get(session.Id); found {
		return cached.(*entity.ProfileRecord)
	}

	doc, found, err := s.docs.Get(ctx, profileCollection, session.UserId)
	if err != nil {
		s.log.Warn("dashboard_service", "Profile fetch failed", map[string]interface{}{
			"user_id": session.UserId,
			"error":   err.Error(),
		})
		return nil
	}
	if !found {
		s.profileCache.SetDefault(session.Id, (*entity.ProfileRecord)(nil))
		return nil
	}

	record := s.profileMapper.ToRecord(doc)
	s.profileCache.SetDefault(session.Id, record)
	return record
}

func (s *dashboardService) applicantInfo(session *store.Session, profile *entity.ProfileRecord) dto.ApplicantInfoResponse {
	info := dto.ApplicantInfoResponse{
		DisplayName: session.DisplayName,
		Email:       session.Email,
	}
	if info.DisplayName == "" {
		info.DisplayName = "Applicant"
	}
	if profile != nil {
		info.ContactId = profile.ContactId
		info.ContactName = profile.ContactName
	}
	return info
}

func toSubstepResponses(substeps []onboarding.Substep) []dto.SubstepResponse {
	out := make([]dto.SubstepResponse, 0, len(substeps))
	for _, substep := range substeps {
		out = append(out, dto.SubstepResponse{
			Id:          substep.Id,
			Name:        substep.Name,
			Description: substep.Description,
			Status:      string(substep.Status),
		})
	}
	return out
}

func toStepResponse(step onboarding.Step) dto.StepResponse {
	return dto.StepResponse{
		Id:          step.Id,
		Name:        step.Name,
		Type:        step.Type,
		Description: step.Description,
		Status:      string(step.Status),
		Substeps:    toSubstepResponses(step.Substeps),
	}
}

func toStepResponses(steps []onboarding.Step) []dto.StepResponse {
	out := make([]dto.StepResponse, 0, len(steps))
	for _, step := range steps {
		out = append(out, toStepResponse(step))
	}
	return out
}
