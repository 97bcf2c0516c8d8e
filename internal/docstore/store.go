package docstore

import "context"

// Store is the Profile Store contract: a document store addressed by
// (collection, id). Get reports absence through the found flag, not an error.
type Store interface {
	Get(ctx context.Context, collection, id string) (map[string]interface{}, bool, error)
	Set(ctx context.Context, collection, id string, record map[string]interface{}) error
}
