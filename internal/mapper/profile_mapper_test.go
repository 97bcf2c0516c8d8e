package mapper

import (
	"testing"

	"applicant-portal-be/internal/entity"
)

func TestProfileMapperRoundTrip(t *testing.T) {
	m := NewProfileMapper()

	record := &entity.ProfileRecord{
		ContactId:              "42",
		ContactName:            "Jane Doe",
		SalesforceEmail:        "jane@salesforce.example.com",
		CreatedAt:              "2026-01-02T15:04:05Z",
		LastLogin:              "2026-01-02T15:04:05Z",
		ApplicationStatus:      "Interview",
		QuestionnaireCompleted: true,
		QuestionnaireGraded:    false,
	}

	got := m.ToRecord(m.ToDocument(record))
	if *got != *record {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, record)
	}
}

func TestProfileMapperOmitsEmptyApplicationStatus(t *testing.T) {
	m := NewProfileMapper()

	doc := m.ToDocument(&entity.ProfileRecord{ContactId: "42"})
	if _, ok := doc["applicationStatus"]; ok {
		t.Error("empty application status should not be written")
	}
	if _, ok := doc["questionnaireCompleted"]; ok {
		t.Error("questionnaire flags should ride with the status")
	}
}

func TestProfileMapperToleratesForeignTypes(t *testing.T) {
	m := NewProfileMapper()

	// JSON columns can hand back anything; wrong types degrade to zero values.
	record := m.ToRecord(map[string]interface{}{
		"contactId":              12345,
		"contactName":            "Jane Doe",
		"questionnaireCompleted": "yes",
	})

	if record.ContactId != "" {
		t.Errorf("ContactId = %q, want empty", record.ContactId)
	}
	if record.ContactName != "Jane Doe" {
		t.Errorf("ContactName = %q, want Jane Doe", record.ContactName)
	}
	if record.QuestionnaireCompleted {
		t.Error("QuestionnaireCompleted should be false for non-bool input")
	}
}
