package contract

import "ai-roomplanner-be/pkg/planner/session"

// ISessionRepository stores live wizard sessions. Implementations may expire
// idle sessions; a missing id is reported through the bool, never an error.
type ISessionRepository interface {
	Save(s *session.Session)
	Get(sessionId string) (*session.Session, bool)
	Delete(sessionId string)
}
