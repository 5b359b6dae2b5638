package response

import (
	"photostudio/internal/domain/entities"
)

// SessionResponse mirrors the session state machine: user only when
// authenticated, error only when failed.
type SessionResponse struct {
	Phase string         `json:"phase"`
	User  *entities.User `json:"user,omitempty"`
	Error string         `json:"error,omitempty"`
}

func FromSessionState(s entities.SessionState) SessionResponse {
	return SessionResponse{
		Phase: string(s.Phase),
		User:  s.User,
		Error: s.Error,
	}
}
