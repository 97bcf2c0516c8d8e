package service

import (
	"context"
	"sync"

	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/pkg/validation"
	"applicant-portal-be/pkg/store"
)

// fakeProvider is a scriptable identity.Provider. Session change handlers
// are invoked synchronously through emit, so tests control ordering.
type fakeProvider struct {
	mu       sync.Mutex
	handlers []func(*store.Session)

	signInSession *store.Session
	createSession *store.Session

	signInErr     error
	createErr     error
	updateNameErr error
	signOutErr    error

	createCalled  bool
	signOutCalled bool
	updatedName   string

	// When set, SignInWithCredentials signals signInEntered and then blocks
	// until signInGate closes.
	signInGate    chan struct{}
	signInEntered chan struct{}
}

var _ identity.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) SignInWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	if f.signInGate != nil {
		f.signInEntered <- struct{}{}
		<-f.signInGate
	}
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.signInSession, nil
}

func (f *fakeProvider) CreateWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	f.mu.Lock()
	f.createCalled = true
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createSession, nil
}

func (f *fakeProvider) UpdateDisplayName(ctx context.Context, session *store.Session, name string) error {
	if f.updateNameErr != nil {
		return f.updateNameErr
	}
	f.mu.Lock()
	f.updatedName = name
	f.mu.Unlock()
	return nil
}

func (f *fakeProvider) SignOut(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	f.signOutCalled = true
	f.mu.Unlock()
	return f.signOutErr
}

func (f *fakeProvider) OnSessionChange(handler func(*store.Session)) (func(), error) {
	f.mu.Lock()
	f.handlers = append(f.handlers, handler)
	f.mu.Unlock()
	return func() {}, nil
}

func (f *fakeProvider) Resolve(sessionID string) (*store.Session, bool) {
	return nil, false
}

func (f *fakeProvider) emit(session *store.Session) {
	f.mu.Lock()
	handlers := append([]func(*store.Session){}, f.handlers...)
	f.mu.Unlock()
	for _, handler := range handlers {
		handler(session)
	}
}

type fakeValidationClient struct {
	result *validation.Result
	err    error

	calls         int
	lastContactID string
	lastEmail     string
}

var _ validation.IClient = (*fakeValidationClient)(nil)

func (f *fakeValidationClient) Validate(ctx context.Context, contactID, email string) (*validation.Result, error) {
	f.calls++
	f.lastContactID = contactID
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// noopLogger satisfies logger.ILogger without output.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error { return nil }
