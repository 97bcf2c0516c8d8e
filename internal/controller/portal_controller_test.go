package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/navigation"
	"applicant-portal-be/internal/pkg/serverutils"
	"applicant-portal-be/internal/service"
	"applicant-portal-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	session *store.Session
}

func (s *stubProvider) SignInWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	return nil, nil
}

func (s *stubProvider) CreateWithCredentials(ctx context.Context, email, password string) (*store.Session, error) {
	return nil, nil
}

func (s *stubProvider) UpdateDisplayName(ctx context.Context, session *store.Session, name string) error {
	return nil
}

func (s *stubProvider) SignOut(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubProvider) OnSessionChange(handler func(*store.Session)) (func(), error) {
	return func() {}, nil
}

func (s *stubProvider) Resolve(sessionID string) (*store.Session, bool) {
	if s.session != nil && s.session.Id == sessionID {
		return s.session, true
	}
	return nil, false
}

func newPortalTestApp(t *testing.T, provider *stubProvider, secret string) *fiber.App {
	t.Helper()
	portal, err := service.NewPortalService(provider, noopTestLogger{})
	require.NoError(t, err)
	t.Cleanup(portal.Close)

	app := fiber.New()
	NewPortalController(portal, provider, secret).RegisterRoutes(app.Group("/api"))
	return app
}

type noopTestLogger struct{}

func (noopTestLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopTestLogger) Info(module, message string, details map[string]interface{})  {}
func (noopTestLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopTestLogger) Error(module, message string, details map[string]interface{}) {}
func (noopTestLogger) Sync() error { return nil }

func getView(t *testing.T, app *fiber.App, url string) serverutils.BaseResponse[dto.PortalViewResponse] {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope serverutils.BaseResponse[dto.PortalViewResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestPortalViewEndpoint(t *testing.T) {
	app := newPortalTestApp(t, &stubProvider{}, "test_secret")

	t.Run("anonymous login path", func(t *testing.T) {
		envelope := getView(t, app, "/api/portal/view?path=/login")
		assert.True(t, envelope.Success)
		assert.Equal(t, string(navigation.PageLogin), envelope.Data.Page)
		assert.Nil(t, envelope.Data.Redirect)
	})

	t.Run("anonymous unknown path falls back to landing", func(t *testing.T) {
		envelope := getView(t, app, "/api/portal/view?path=/billing")
		assert.Equal(t, string(navigation.PageLanding), envelope.Data.Page)
	})
}

func TestSignupPrefillEndpoint(t *testing.T) {
	app := newPortalTestApp(t, &stubProvider{}, "test_secret")

	req := httptest.NewRequest(http.MethodGet, "/api/portal/signup-prefill?contactId=42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope serverutils.BaseResponse[dto.SignupPrefillResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "42", envelope.Data.ContactId)

	// Missing contact id is a client error.
	req = httptest.NewRequest(http.MethodGet, "/api/portal/signup-prefill", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
