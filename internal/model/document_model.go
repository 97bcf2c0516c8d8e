package model

import (
	"time"

	"gorm.io/datatypes"
)

// Document is one record of the generic document store backing the Profile
// Store contract: (collection, doc_id) addresses a single JSON payload.
type Document struct {
	Id         uint              `gorm:"primaryKey;autoIncrement"`
	Collection string            `gorm:"type:varchar(100);not null;uniqueIndex:idx_documents_collection_doc"`
	DocId      string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_documents_collection_doc"`
	Payload    datatypes.JSONMap `gorm:"not null"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
