package memory

import (
	"time"

	"applicant-portal-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRegistry tracks live portal sessions in memory. A session missing
// from the registry (signed out or expired) is no longer valid even if its
// token has not expired yet.
type SessionRegistry struct {
	cache *cache.Cache
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRegistry{
		cache: c,
	}
}

func (r *SessionRegistry) Save(s *store.Session) {
	r.cache.Set(s.Id, s, cache.DefaultExpiration)
}

func (r *SessionRegistry) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRegistry) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
