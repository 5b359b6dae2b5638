package entities

import "time"

// User is the authenticated customer record. The storefront denormalizes the
// fields it shows (name, email, phone); passwords never live here.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// SessionPhase is the authentication state machine.
//
// anonymous -> authenticating -> authenticated | failed
// authenticated -> anonymous (logout, any time)
// failed -> authenticating (retry)
type SessionPhase string

const (
	SessionAnonymous      SessionPhase = "anonymous"
	SessionAuthenticating SessionPhase = "authenticating"
	SessionAuthenticated  SessionPhase = "authenticated"
	SessionFailed         SessionPhase = "failed"
)

// SessionState is the observable session snapshot. User is non-nil only in
// the authenticated phase; Error is set only in the failed phase.
type SessionState struct {
	Phase SessionPhase `json:"phase"`
	User  *User        `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}

// RegisterData is the registration boundary payload. ConfirmPassword is
// validated at the boundary and never part of the stored model.
type RegisterData struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone,omitempty"`
}
