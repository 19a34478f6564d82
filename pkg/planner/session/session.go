// Package session binds one wizard State to a session id and serializes all
// writes through a single lock, so every dispatch sees a consistent snapshot
// and readers never observe a half-applied action.
package session

import (
	"sync"
	"time"

	"ai-roomplanner-be/pkg/planner/state"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	state     state.State
	updatedAt time.Time
}

func New(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		state:     state.Initial(),
		updatedAt: now,
	}
}

// Dispatch applies the actions in order under the session lock and returns
// the resulting snapshot.
func (s *Session) Dispatch(actions ...state.Action) state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = state.Reduce(s.state, a)
	}
	s.updatedAt = time.Now()
	return s.state
}

// Snapshot returns the current state. The value is a copy at the struct
// level; callers must treat nested slices as read-only.
func (s *Session) Snapshot() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
