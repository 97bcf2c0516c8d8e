package identity

import (
	"context"
	"errors"

	"applicant-portal-be/pkg/store"
)

// Provider is the Session Store contract. It owns the Session lifecycle
// exclusively; the rest of the application only observes sessions through
// the values returned here and the OnSessionChange stream.
type Provider interface {
	SignInWithCredentials(ctx context.Context, email, password string) (*store.Session, error)
	CreateWithCredentials(ctx context.Context, email, password string) (*store.Session, error)
	UpdateDisplayName(ctx context.Context, session *store.Session, name string) error
	SignOut(ctx context.Context, sessionID string) error

	// OnSessionChange registers a handler that fires on every session
	// change for the lifetime of the subscription: a non-nil session after
	// sign-in/sign-up, nil after sign-out. The returned function tears the
	// subscription down.
	OnSessionChange(handler func(*store.Session)) (func(), error)

	// Resolve returns the live session for an id, if any.
	Resolve(sessionID string) (*store.Session, bool)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrSessionNotFound    = errors.New("session not found")
)
