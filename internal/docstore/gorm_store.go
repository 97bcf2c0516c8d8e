package docstore

import (
	"context"
	"errors"

	"applicant-portal-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, collection, id string) (map[string]interface{}, bool, error) {
	var doc model.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return map[string]interface{}(doc.Payload), true, nil
}

func (s *gormStore) Set(ctx context.Context, collection, id string, record map[string]interface{}) error {
	doc := model.Document{
		Collection: collection,
		DocId:      id,
		Payload:    datatypes.JSONMap(record),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&doc).Error
}
