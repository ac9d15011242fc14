package entity

import (
	"time"

	"gig-planner/core/entity"

	"github.com/google/uuid"
)

// GigStatus represents the lifecycle state of a gig.
type GigStatus string

const (
	GigStatusDraft     GigStatus = "draft"
	GigStatusConfirmed GigStatus = "confirmed"
	GigStatusCancelled GigStatus = "cancelled"
)

// Gig is a scheduled event with a lineup of roles.
type Gig struct {
	entity.BaseEntity
	OwnerID      uuid.UUID  `db:"owner_id" json:"owner_id"`
	Title        string     `db:"title" json:"title"`
	Slug         string     `db:"slug" json:"slug"`
	Status       GigStatus  `db:"status" json:"status"`
	StartsAt     time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt       *time.Time `db:"ends_at" json:"ends_at,omitempty"`
	LocationName *string    `db:"location_name" json:"location_name,omitempty"`
	HostName     *string    `db:"host_name" json:"host_name,omitempty"`
	Notes        *string    `db:"notes" json:"notes,omitempty"`
	SetlistURL   *string    `db:"setlist_url" json:"setlist_url,omitempty"`
}

func (Gig) TableName() string {
	return "gigs"
}
