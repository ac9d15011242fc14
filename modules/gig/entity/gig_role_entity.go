package entity

import (
	"gig-planner/core/entity"

	"github.com/google/uuid"
)

// InvitationStatus tracks a lineup role's response to its invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusInvited  InvitationStatus = "invited"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusNeedsSub InvitationStatus = "needs_sub"
	InvitationStatusReplaced InvitationStatus = "replaced"
)

// invitationTransitions is the closed transition graph. declined and
// replaced are terminal; a replacement is a new role record.
var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationStatusPending:  {InvitationStatusInvited},
	InvitationStatusInvited:  {InvitationStatusAccepted, InvitationStatusDeclined},
	InvitationStatusAccepted: {InvitationStatusNeedsSub},
	InvitationStatusNeedsSub: {InvitationStatusReplaced},
	InvitationStatusDeclined: {},
	InvitationStatusReplaced: {},
}

// Valid reports whether s is one of the known statuses.
func (s InvitationStatus) Valid() bool {
	_, ok := invitationTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> next is in the graph.
func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GigRole is a lineup slot assigned to a musician within a gig.
type GigRole struct {
	entity.BaseEntity
	GigID            uuid.UUID        `db:"gig_id" json:"gig_id"`
	MusicianName     string           `db:"musician_name" json:"musician_name"`
	RoleName         string           `db:"role_name" json:"role_name"`
	ContactEmail     *string          `db:"contact_email" json:"contact_email,omitempty"`
	InvitationStatus InvitationStatus `db:"invitation_status" json:"invitation_status"`
	CalendarEventID  *string          `db:"calendar_event_id" json:"-"`
	InviteToken      string           `db:"invite_token" json:"-"`
}

func (GigRole) TableName() string {
	return "gig_roles"
}

// HasContactEmail reports whether an invite can be delivered to this role.
func (r *GigRole) HasContactEmail() bool {
	return r.ContactEmail != nil && *r.ContactEmail != ""
}
