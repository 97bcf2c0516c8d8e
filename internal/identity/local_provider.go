package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"applicant-portal-be/internal/entity"
	"applicant-portal-be/internal/pkg/logger"
	"applicant-portal-be/internal/repository/memory"
	"applicant-portal-be/internal/repository/specification"
	"applicant-portal-be/internal/repository/unitofwork"
	"applicant-portal-be/pkg/events"
	pktNats "applicant-portal-be/pkg/nats"
	"applicant-portal-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionChangedTopic = "SESSION_CHANGED"

// changeEnvelope wraps a session snapshot on the change bus. A nil Session
// marks sign-out.
type changeEnvelope struct {
	Session *store.Session `json:"session"`
}

type localProvider struct {
	uowFactory     unitofwork.RepositoryFactory
	registry       *memory.SessionRegistry
	bus            *gochannel.GoChannel
	eventPublisher *pktNats.Publisher
	log            logger.ILogger

	jwtSecret  string
	sessionTTL time.Duration
}

// NewLocalProvider builds the Postgres-backed Session Store: bcrypt
// credentials in the applicants table, HS256 access tokens, a go-cache live
// session registry, and a gochannel bus carrying session-change
// notifications. The NATS publisher is optional; lifecycle events are
// best-effort.
func NewLocalProvider(
	uowFactory unitofwork.RepositoryFactory,
	registry *memory.SessionRegistry,
	bus *gochannel.GoChannel,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	jwtSecret string,
	sessionTTL time.Duration,
) Provider {
	return &localProvider{
		uowFactory:     uowFactory,
		registry:       registry,
		bus:            bus,
		eventPublisher: eventPublisher,
		log:            log,
		jwtSecret:      jwtSecret,
		sessionTTL:     sessionTTL,
	}
}

func (p *localProvider) SignInWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	// 1. Look up the applicant
	applicant, err := uow.ApplicantRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}
	if applicant == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Status check
	if applicant.Status == entity.ApplicantStatusBlocked {
		return nil, ErrAccountBlocked
	}

	// 3. Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(applicant.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 4. Issue session
	session, err := p.issueSession(applicant)
	if err != nil {
		return nil, err
	}

	p.publishChange(session)
	p.publishLifecycleEvent(ctx, events.TypeApplicantSignedIn, session)

	return session, nil
}

func (p *localProvider) CreateWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing account
	existing, _ := uow.ApplicantRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create the applicant
	applicant := &entity.Applicant{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Status:       entity.ApplicantStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.ApplicantRepository().Create(ctx, applicant); err != nil {
		return nil, err
	}

	// 4. Issue session
	session, err := p.issueSession(applicant)
	if err != nil {
		return nil, err
	}

	p.publishChange(session)
	p.publishLifecycleEvent(ctx, events.TypeApplicantSignedUp, session)

	return session, nil
}

func (p *localProvider) UpdateDisplayName(ctx context.Context, session *store.Session, name string) error {
	if !session.Valid() {
		return ErrSessionNotFound
	}

	userID, err := uuid.Parse(session.UserId)
	if err != nil {
		return fmt.Errorf("malformed session user id: %w", err)
	}

	uow := p.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ApplicantRepository().UpdateDisplayName(ctx, userID, name); err != nil {
		return err
	}

	// Refresh the live snapshot so later resolves see the new name.
	session.DisplayName = name
	p.registry.Save(session)
	return nil
}

func (p *localProvider) SignOut(ctx context.Context, sessionID string) error {
	if _, found := p.registry.Get(sessionID); !found {
		return ErrSessionNotFound
	}
	p.registry.Delete(sessionID)

	p.publishChange(nil)
	p.publishLifecycleEvent(ctx, events.TypeApplicantSignedOut, &store.Session{Id: sessionID})

	return nil
}

func (p *localProvider) OnSessionChange(handler func(*store.Session)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())

	messages, err := p.bus.Subscribe(ctx, sessionChangedTopic)
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		for msg := range messages {
			var envelope changeEnvelope
			if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
				p.log.Error("identity", "Malformed session change payload", map[string]interface{}{"error": err.Error()})
				msg.Ack()
				continue
			}
			msg.Ack()
			handler(envelope.Session)
		}
	}()

	return cancel, nil
}

func (p *localProvider) Resolve(sessionID string) (*store.Session, bool) {
	return p.registry.Get(sessionID)
}

func (p *localProvider) issueSession(applicant *entity.Applicant) (*store.Session, error) {
	sessionID := uuid.New().String()

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    applicant.Id.String(),
		"exp":        time.Now().Add(p.sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		return nil, err
	}

	session := &store.Session{
		Id:          sessionID,
		UserId:      applicant.Id.String(),
		Email:       applicant.Email,
		DisplayName: applicant.DisplayName,
		AccessToken: signedToken,
	}
	p.registry.Save(session)

	return session, nil
}

func (p *localProvider) publishChange(session *store.Session) {
	payload, err := json.Marshal(changeEnvelope{Session: session})
	if err != nil {
		p.log.Error("identity", "Failed to marshal session change", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.bus.Publish(sessionChangedTopic, msg); err != nil {
		p.log.Error("identity", "Failed to publish session change", map[string]interface{}{"error": err.Error()})
	}
}

func (p *localProvider) publishLifecycleEvent(ctx context.Context, eventType string, session *store.Session) {
	if p.eventPublisher == nil {
		return
	}

	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"session_id": session.Id,
			"user_id":    session.UserId,
			"time":       time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
	if err := p.eventPublisher.Publish(ctx, event); err != nil {
		p.log.Warn("identity", "Failed to publish lifecycle event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
