package service

import (
	"context"
	"errors"
	"testing"

	"applicant-portal-be/internal/docstore"
	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/internal/pkg/validation"
	"applicant-portal-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(provider *fakeProvider, validator *fakeValidationClient) (IAuthService, *docstore.MemoryStore) {
	docs := docstore.NewMemoryStore()
	svc := NewAuthService(
		provider,
		validator,
		docs,
		mapper.NewProfileMapper(),
		nil,
		noopLogger{},
		"Propel User",
	)
	return svc, docs
}

func TestSignUpRejectedByWebhook(t *testing.T) {
	provider := &fakeProvider{}
	validator := &fakeValidationClient{err: &validation.RejectedError{Message: "not eligible"}}
	svc, docs := newAuthFixture(provider, validator)

	res, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		ContactId: "42",
		Email:     "jane@example.com",
		Password:  "supersecret",
	})

	require.Error(t, err)
	assert.Nil(t, res)

	authErr := AsAuthError(err)
	assert.Equal(t, KindValidation, authErr.Kind)
	assert.Equal(t, "not eligible", authErr.Message)

	// No account, no profile: the gate failed before provisioning.
	assert.False(t, provider.createCalled)
	assert.Equal(t, 0, docs.Len())
}

func TestSignUpWebhookUnreachable(t *testing.T) {
	provider := &fakeProvider{}
	validator := &fakeValidationClient{err: &validation.TransportError{Err: errors.New("dial tcp: refused")}}
	svc, docs := newAuthFixture(provider, validator)

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		ContactId: "42",
		Email:     "jane@example.com",
		Password:  "supersecret",
	})

	require.Error(t, err)
	assert.Equal(t, KindNetwork, AsAuthError(err).Kind)
	assert.False(t, provider.createCalled)
	assert.Equal(t, 0, docs.Len())
}

func TestSignUpProvisionsProfile(t *testing.T) {
	session := &store.Session{
		Id:          "sess-1",
		UserId:      "user-1",
		Email:       "jane@example.com",
		AccessToken: "token",
	}
	provider := &fakeProvider{createSession: session}
	validator := &fakeValidationClient{result: &validation.Result{Contact: "Jane Doe", Email: "jane@salesforce.example.com"}}
	svc, docs := newAuthFixture(provider, validator)

	res, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		ContactId: "42",
		Email:     "jane@example.com",
		Password:  "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", res.DisplayName)
	assert.Equal(t, "Jane Doe", provider.updatedName)
	assert.Equal(t, "42", validator.lastContactID)

	doc, found, err := docs.Get(context.Background(), "users", "user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "42", doc["contactId"])
	assert.Equal(t, "Jane Doe", doc["contactName"])
	assert.Equal(t, "jane@salesforce.example.com", doc["salesforceEmail"])
	assert.NotEmpty(t, doc["createdAt"])
	assert.Equal(t, doc["createdAt"], doc["lastLogin"])
}

func TestSignUpFallsBackToDefaultDisplayName(t *testing.T) {
	session := &store.Session{Id: "sess-1", UserId: "user-1", Email: "jane@example.com"}
	provider := &fakeProvider{createSession: session}
	// Acceptance with an empty body carries no contact name.
	validator := &fakeValidationClient{result: &validation.Result{}}
	svc, _ := newAuthFixture(provider, validator)

	res, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		ContactId: "42",
		Email:     "jane@example.com",
		Password:  "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Propel User", res.DisplayName)
	assert.Equal(t, "Propel User", provider.updatedName)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	provider := &fakeProvider{createErr: identity.ErrEmailRegistered}
	validator := &fakeValidationClient{result: &validation.Result{Contact: "Jane Doe"}}
	svc, docs := newAuthFixture(provider, validator)

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		ContactId: "42",
		Email:     "jane@example.com",
		Password:  "supersecret",
	})

	require.Error(t, err)
	authErr := AsAuthError(err)
	assert.Equal(t, KindCredential, authErr.Kind)
	assert.Equal(t, identity.ErrEmailRegistered.Error(), authErr.Message)
	assert.Equal(t, 0, docs.Len())
}

func TestSignUpMissingFields(t *testing.T) {
	provider := &fakeProvider{}
	validator := &fakeValidationClient{}
	svc, _ := newAuthFixture(provider, validator)

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{Email: "jane@example.com", Password: "supersecret"})

	require.Error(t, err)
	assert.Equal(t, KindValidation, AsAuthError(err).Kind)
	assert.Equal(t, 0, validator.calls)
}

func TestSignInSuccess(t *testing.T) {
	session := &store.Session{Id: "sess-1", UserId: "user-1", Email: "jane@example.com", DisplayName: "Jane Doe", AccessToken: "token"}
	provider := &fakeProvider{signInSession: session}
	svc, _ := newAuthFixture(provider, &fakeValidationClient{})

	res, err := svc.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", res.SessionId)
	assert.Equal(t, "Jane Doe", res.DisplayName)
	assert.Equal(t, "token", res.AccessToken)
}

func TestSignInInvalidCredentials(t *testing.T) {
	provider := &fakeProvider{signInErr: identity.ErrInvalidCredentials}
	svc, _ := newAuthFixture(provider, &fakeValidationClient{})

	_, err := svc.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "wrong"})

	require.Error(t, err)
	authErr := AsAuthError(err)
	assert.Equal(t, KindCredential, authErr.Kind)
	assert.Equal(t, identity.ErrInvalidCredentials.Error(), authErr.Message)
}

func TestSignInRejectsConcurrentAttempts(t *testing.T) {
	session := &store.Session{Id: "sess-1", UserId: "user-1"}
	provider := &fakeProvider{
		signInSession: session,
		signInGate:    make(chan struct{}),
		signInEntered: make(chan struct{}),
	}
	svc, _ := newAuthFixture(provider, &fakeValidationClient{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "supersecret"})
		firstDone <- err
	}()

	// Wait until the first attempt is inside the provider, then try again.
	<-provider.signInEntered
	_, err := svc.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(provider.signInGate)
	assert.NoError(t, <-firstDone)
}

func TestSignOut(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider := &fakeProvider{}
		svc, _ := newAuthFixture(provider, &fakeValidationClient{})

		err := svc.SignOut(context.Background(), "sess-1")

		assert.NoError(t, err)
		assert.True(t, provider.signOutCalled)
	})

	t.Run("provider failure is surfaced", func(t *testing.T) {
		provider := &fakeProvider{signOutErr: identity.ErrSessionNotFound}
		svc, _ := newAuthFixture(provider, &fakeValidationClient{})

		err := svc.SignOut(context.Background(), "sess-1")

		require.Error(t, err)
		assert.Equal(t, KindUnknown, AsAuthError(err).Kind)
	})
}
