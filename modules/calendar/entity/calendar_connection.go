package entity

import (
	"time"

	"gig-planner/core/entity"

	"github.com/google/uuid"
)

// CalendarConnection stores a user's calendar provider link. At most one
// row exists per (user_id, provider); reconnecting overwrites tokens in
// place rather than creating a second row.
type CalendarConnection struct {
	entity.BaseEntity
	UserID             uuid.UUID  `db:"user_id" json:"user_id"`
	Provider           string     `db:"provider" json:"provider"`
	ProviderCalendarID string     `db:"provider_calendar_id" json:"provider_calendar_id"`
	AccessToken        string     `db:"access_token" json:"-"`
	RefreshToken       string     `db:"refresh_token" json:"-"`
	TokenExpiresAt     time.Time  `db:"token_expires_at" json:"token_expires_at"`
	SyncEnabled        bool       `db:"sync_enabled" json:"sync_enabled"`
	WriteAccess        bool       `db:"write_access" json:"write_access"`
	LastSyncedAt       *time.Time `db:"last_synced_at" json:"last_synced_at,omitempty"`
}

func (CalendarConnection) TableName() string {
	return "calendar_connections"
}
