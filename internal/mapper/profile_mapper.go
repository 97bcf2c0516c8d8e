package mapper

import (
	"applicant-portal-be/internal/entity"
)

// Profile documents travel through the document store as plain JSON maps,
// mirroring the shape the original Firestore document used.

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToDocument(p *entity.ProfileRecord) map[string]interface{} {
	if p == nil {
		return nil
	}
	doc := map[string]interface{}{
		"contactId":       p.ContactId,
		"contactName":     p.ContactName,
		"salesforceEmail": p.SalesforceEmail,
		"createdAt":       p.CreatedAt,
		"lastLogin":       p.LastLogin,
	}
	if p.ApplicationStatus != "" {
		doc["applicationStatus"] = p.ApplicationStatus
		doc["questionnaireCompleted"] = p.QuestionnaireCompleted
		doc["questionnaireGraded"] = p.QuestionnaireGraded
	}
	return doc
}

func (m *ProfileMapper) ToRecord(doc map[string]interface{}) *entity.ProfileRecord {
	if doc == nil {
		return nil
	}
	return &entity.ProfileRecord{
		ContactId:              asString(doc["contactId"]),
		ContactName:            asString(doc["contactName"]),
		SalesforceEmail:        asString(doc["salesforceEmail"]),
		CreatedAt:              asString(doc["createdAt"]),
		LastLogin:              asString(doc["lastLogin"]),
		ApplicationStatus:      asString(doc["applicationStatus"]),
		QuestionnaireCompleted: asBool(doc["questionnaireCompleted"]),
		QuestionnaireGraded:    asBool(doc["questionnaireGraded"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
