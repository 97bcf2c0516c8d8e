package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"applicant-portal-be/internal/docstore"
	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/internal/pkg/logger"
	"applicant-portal-be/internal/pkg/mailer"
	"applicant-portal-be/internal/pkg/validation"
	"applicant-portal-be/pkg/store"
)

const profileCollection = "users"

type IAuthService interface {
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SessionResponse, error)
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SessionResponse, error)
	SignOut(ctx context.Context, sessionID string) error
}

type authService struct {
	provider           identity.Provider
	validationClient   validation.IClient
	docs               docstore.Store
	profileMapper      *mapper.ProfileMapper
	emailService       mailer.IEmailService
	log                logger.ILogger
	defaultDisplayName string

	signInInFlight  atomic.Bool
	signUpInFlight  atomic.Bool
	signOutInFlight atomic.Bool
}

func NewAuthService(
	provider identity.Provider,
	validationClient validation.IClient,
	docs docstore.Store,
	profileMapper *mapper.ProfileMapper,
	emailService mailer.IEmailService,
	log logger.ILogger,
	defaultDisplayName string,
) IAuthService {
	return &authService{
		provider:           provider,
		validationClient:   validationClient,
		docs:               docs,
		profileMapper:      profileMapper,
		emailService:       emailService,
		log:                log,
		defaultDisplayName: defaultDisplayName,
	}
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SessionResponse, error) {
	if !s.signInInFlight.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer s.signInInFlight.Store(false)

	if req.Email == "" || req.Password == "" {
		return nil, newAuthError(KindValidation, "email and password are required")
	}

	session, err := s.provider.SignInWithCredentials(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("auth_service", "Sign in failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, classifyIdentityError(err)
	}

	s.log.Info("auth_service", "Applicant signed in", map[string]interface{}{
		"user_id": session.UserId,
	})
	return toSessionResponse(session), nil
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SessionResponse, error) {
	if !s.signUpInFlight.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer s.signUpInFlight.Store(false)

	if req.ContactId == "" || req.Email == "" || req.Password == "" {
		return nil, newAuthError(KindValidation, "contact id, email and password are required")
	}

	// Eligibility gate: no account exists until the webhook accepts the
	// contact id and email pair.
	result, err := s.validationClient.Validate(ctx, req.ContactId, req.Email)
	if err != nil {
		return nil, classifyValidationError(err)
	}

	session, err := s.provider.CreateWithCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, classifyIdentityError(err)
	}

	displayName := result.Contact
	if displayName == "" {
		displayName = s.defaultDisplayName
	}
	if err := s.provider.UpdateDisplayName(ctx, session, displayName); err != nil {
		return nil, newAuthError(KindUnknown, err.Error())
	}
	session.DisplayName = displayName

	now := time.Now().UTC().Format(time.RFC3339)
	record := entity.ProfileRecord{
		ContactId:       req.ContactId,
		ContactName:     result.Contact,
		SalesforceEmail: result.Email,
		CreatedAt:       now,
		LastLogin:       now,
	}
	if err := s.docs.Set(ctx, profileCollection, session.UserId, s.profileMapper.ToDocument(&record)); err != nil {
		return nil, newAuthError(KindUnknown, err.Error())
	}

	if s.emailService != nil {
		go s.emailService.SendWelcome(req.Email, displayName)
	}

	s.log.Info("auth_service", "Applicant signed up", map[string]interface{}{
		"user_id":    session.UserId,
		"contact_id": req.ContactId,
	})
	return toSessionResponse(session), nil
}

func (s *authService) SignOut(ctx context.Context, sessionID string) error {
	if !s.signOutInFlight.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer s.signOutInFlight.Store(false)

	if err := s.provider.SignOut(ctx, sessionID); err != nil {
		s.log.Warn("auth_service", "Sign out failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return newAuthError(KindUnknown, err.Error())
	}
	return nil
}

func classifyIdentityError(err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrEmailRegistered),
		errors.Is(err, identity.ErrAccountBlocked):
		return newAuthError(KindCredential, err.Error())
	default:
		return newAuthError(KindUnknown, err.Error())
	}
}

func classifyValidationError(err error) error {
	if validation.IsRejection(err) {
		return newAuthError(KindValidation, err.Error())
	}
	var transportErr *validation.TransportError
	if errors.As(err, &transportErr) {
		return newAuthError(KindNetwork, err.Error())
	}
	return newAuthError(KindUnknown, err.Error())
}

func toSessionResponse(session *store.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId:   session.Id,
		UserId:      session.UserId,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		AccessToken: session.AccessToken,
	}
}
