package docstore

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]map[string]interface{}),
	}
}

func key(collection, id string) string {
	return collection + "/" + id
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (map[string]interface{}, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key(collection, id)]
	if !ok {
		return nil, false, nil
	}
	return doc, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, record map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key(collection, id)] = record
	return nil
}

// Len reports the number of stored documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
