package mapper

import (
	"fmt"

	"gig-planner/modules/gig/dto"
	"gig-planner/modules/gig/entity"
)

// DisplayStatus renders a role's status for presentation. A gig still in
// draft shows "invited" as "pending"; this never mutates the stored value.
func DisplayStatus(gigStatus entity.GigStatus, status entity.InvitationStatus) string {
	if gigStatus == entity.GigStatusDraft && status == entity.InvitationStatusInvited {
		return string(entity.InvitationStatusPending)
	}
	return string(status)
}

func ToRoleResponse(gig *entity.Gig, role *entity.GigRole, frontendURL string) dto.RoleResponse {
	resp := dto.RoleResponse{
		ID:           role.ID,
		MusicianName: role.MusicianName,
		RoleName:     role.RoleName,
		ContactEmail: role.ContactEmail,
		Status:       DisplayStatus(gig.Status, role.InvitationStatus),
		StoredStatus: string(role.InvitationStatus),
		HasCalendar:  role.CalendarEventID != nil,
	}
	if frontendURL != "" {
		resp.InviteLink = fmt.Sprintf("%s/invites/%s", frontendURL, role.InviteToken)
	}
	return resp
}

func ToGigResponse(gig *entity.Gig, roles []entity.GigRole, frontendURL string) *dto.GigResponse {
	resp := &dto.GigResponse{
		ID:           gig.ID,
		Title:        gig.Title,
		Slug:         gig.Slug,
		Status:       string(gig.Status),
		StartsAt:     gig.StartsAt,
		EndsAt:       gig.EndsAt,
		LocationName: gig.LocationName,
		HostName:     gig.HostName,
		Notes:        gig.Notes,
		SetlistURL:   gig.SetlistURL,
		CreatedAt:    gig.CreatedAt,
	}
	for i := range roles {
		resp.Roles = append(resp.Roles, ToRoleResponse(gig, &roles[i], frontendURL))
	}
	return resp
}
