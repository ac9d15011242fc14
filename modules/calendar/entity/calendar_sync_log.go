package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sync log operations.
const (
	SyncOpInviteSent   = "invite_sent"
	SyncOpInviteFailed = "invite_failed"
	SyncOpEventDeleted = "event_deleted"
	SyncOpTokenRefresh = "token_refresh"
)

// CalendarSyncLog is an append-only audit record of provider calls made on
// behalf of a connection.
type CalendarSyncLog struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ConnectionID uuid.UUID `db:"connection_id" json:"connection_id"`
	Operation    string    `db:"operation" json:"operation"`
	Detail       string    `db:"detail" json:"detail"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (CalendarSyncLog) TableName() string {
	return "calendar_sync_logs"
}
