package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gig-planner/core/entity"

	"github.com/google/uuid"
)

// Notification types produced by the gig workflow.
const (
	TypeRoleAccepted = "role_accepted"
	TypeRoleDeclined = "role_declined"
	TypeGigReminder  = "gig_reminder"
	TypeGigCancelled = "gig_cancelled"
)

// Notification is an in-app message shown to a gig owner.
type Notification struct {
	entity.BaseEntity
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	Data    JSONB     `db:"data" json:"data"`
	IsRead  bool      `db:"is_read" json:"is_read"`
}

func (Notification) TableName() string {
	return "notifications"
}

// JSONB maps a postgres jsonb column onto a Go map.
type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
