package service

import (
	"context"
	"testing"
	"time"

	"applicant-portal-be/internal/docstore"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFormURL = "https://forms.example.com/screening"

func newDashboardFixture() (IDashboardService, *docstore.MemoryStore) {
	docs := docstore.NewMemoryStore()
	svc := NewDashboardService(docs, mapper.NewProfileMapper(), noopLogger{}, testFormURL, time.Hour)
	return svc, docs
}

func testSession() *store.Session {
	return &store.Session{
		Id:          "sess-1",
		UserId:      "user-1",
		Email:       "jane@example.com",
		DisplayName: "Jane Doe",
	}
}

func TestGetDashboardWithoutProfile(t *testing.T) {
	svc, _ := newDashboardFixture()

	res, err := svc.GetDashboard(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", res.Applicant.DisplayName)
	assert.Equal(t, "", res.Applicant.ContactId)
	assert.Equal(t, 17, res.ProgressPercentage)
	assert.Len(t, res.Steps, 3)
	assert.False(t, res.AllStepsComplete)

	// No contact id on file, so the form link carries the placeholder.
	assert.Equal(t, testFormURL+"?contact_id=test", res.QuestionnaireURL)

	require.NotNil(t, res.CurrentStep)
	assert.Equal(t, 1, res.CurrentStep.Step.Id)
	require.Len(t, res.CurrentStep.IncompleteSubsteps, 1)
	assert.Equal(t, "1b", res.CurrentStep.IncompleteSubsteps[0].Id)
	assert.Equal(t, "todo", res.CurrentStep.IncompleteSubsteps[0].Status)
}

func TestGetDashboardWithProfile(t *testing.T) {
	svc, docs := newDashboardFixture()
	docs.Set(context.Background(), "users", "user-1", map[string]interface{}{
		"contactId":              "42",
		"contactName":            "Jane Doe",
		"salesforceEmail":        "jane@salesforce.example.com",
		"applicationStatus":      "Initial Screening",
		"questionnaireCompleted": true,
		"questionnaireGraded":    true,
	})

	res, err := svc.GetDashboard(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, "42", res.Applicant.ContactId)
	assert.Equal(t, "Jane Doe", res.Applicant.ContactName)
	assert.Equal(t, 33, res.ProgressPercentage)
	assert.Equal(t, testFormURL+"?contact_id=42", res.QuestionnaireURL)

	// Graded questionnaire closes substep 1b.
	require.NotNil(t, res.CurrentStep)
	assert.Empty(t, res.CurrentStep.IncompleteSubsteps)
}

func TestGetDashboardFallbackDisplayName(t *testing.T) {
	svc, _ := newDashboardFixture()
	session := testSession()
	session.DisplayName = ""

	res, err := svc.GetDashboard(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Applicant", res.Applicant.DisplayName)
}

func TestGetDashboardMemoizesProfilePerSession(t *testing.T) {
	svc, docs := newDashboardFixture()
	docs.Set(context.Background(), "users", "user-1", map[string]interface{}{
		"contactId":   "42",
		"contactName": "Jane Doe",
	})

	res, err := svc.GetDashboard(context.Background(), testSession())
	require.NoError(t, err)
	assert.Equal(t, "42", res.Applicant.ContactId)

	// A later write is invisible within the same session: the first fetch won.
	docs.Set(context.Background(), "users", "user-1", map[string]interface{}{
		"contactId":   "99",
		"contactName": "Someone Else",
	})

	res, err = svc.GetDashboard(context.Background(), testSession())
	require.NoError(t, err)
	assert.Equal(t, "42", res.Applicant.ContactId)

	// A fresh session sees the new document.
	other := testSession()
	other.Id = "sess-2"
	res, err = svc.GetDashboard(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, "99", res.Applicant.ContactId)
}

func TestGetDashboardProgressAdvancesWithStage(t *testing.T) {
	svc, docs := newDashboardFixture()
	session := testSession()

	res, err := svc.GetDashboard(context.Background(), session)
	require.NoError(t, err)
	initial := res.ProgressPercentage

	docs.Set(context.Background(), "users", "user-1", map[string]interface{}{
		"contactId":              "42",
		"applicationStatus":      "Interview",
		"questionnaireCompleted": true,
		"questionnaireGraded":    true,
	})

	session.Id = "sess-2" // bypass the per-session memo
	res, err = svc.GetDashboard(context.Background(), session)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.ProgressPercentage, initial)
	require.NotNil(t, res.CurrentStep)
	assert.Equal(t, 2, res.CurrentStep.Step.Id)
}
