package dto

import (
	"time"

	"github.com/google/uuid"

	coreDto "gig-planner/core/dto"
)

type CreateGigRequest struct {
	Title        string  `json:"title" validate:"required"`
	StartsAt     string  `json:"starts_at" validate:"required"` // RFC3339
	EndsAt       string  `json:"ends_at,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	HostName     *string `json:"host_name,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type UpdateGigRequest struct {
	Title        *string `json:"title,omitempty"`
	StartsAt     *string `json:"starts_at,omitempty"`
	EndsAt       *string `json:"ends_at,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	HostName     *string `json:"host_name,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type AddRoleRequest struct {
	MusicianName string  `json:"musician_name" validate:"required"`
	RoleName     string  `json:"role_name" validate:"required"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

type UpdateRoleEmailRequest struct {
	ContactEmail string `json:"contact_email" validate:"required"`
}

type UpdateRoleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoleResponse struct {
	ID           uuid.UUID `json:"id"`
	MusicianName string    `json:"musician_name"`
	RoleName     string    `json:"role_name"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	// Status is the display status: a draft gig renders "invited" as
	// "pending" without touching the stored value.
	Status       string `json:"status"`
	StoredStatus string `json:"stored_status"`
	HasCalendar  bool   `json:"has_calendar_event"`
	InviteLink   string `json:"invite_link,omitempty"`
}

type GigResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Status       string         `json:"status"`
	StartsAt     time.Time      `json:"starts_at"`
	EndsAt       *time.Time     `json:"ends_at,omitempty"`
	LocationName *string        `json:"location_name,omitempty"`
	HostName     *string        `json:"host_name,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
	SetlistURL   *string        `json:"setlist_url,omitempty"`
	Roles        []RoleResponse `json:"roles,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type PaginatedGigResponse = coreDto.Pagination[GigResponse]

// InviteRespondRequest is the body of the public invite-link endpoint.
type InviteRespondRequest struct {
	Action string `json:"action" validate:"required"` // "accept" | "decline"
}

type InviteDetailsResponse struct {
	GigTitle     string  `json:"gig_title"`
	RoleName     string  `json:"role_name"`
	MusicianName string  `json:"musician_name"`
	StartsAt     string  `json:"starts_at"`
	LocationName *string `json:"location_name,omitempty"`
	Status       string  `json:"status"`
}
