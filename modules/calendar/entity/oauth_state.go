package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthState is a single-use CSRF token handed out with the authorization
// URL. The callback carries no session, so the row also remembers which
// user started the flow and whether they asked for event write access.
type OAuthState struct {
	State       string    `db:"state" json:"state"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	WriteAccess bool      `db:"write_access" json:"write_access"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (OAuthState) TableName() string {
	return "oauth_states"
}

// Expired reports whether the state is past its validity window.
func (s *OAuthState) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
