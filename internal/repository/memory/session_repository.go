package memory

import (
	"time"

	"ai-roomplanner-be/pkg/planner/session"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps wizard sessions in process memory with the
// given idle TTL. Saving refreshes the expiration, so an active session
// never expires under the user.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(s *session.Session) {
	r.cache.Set(s.ID, s, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*session.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
