package dto

// SendInvitationRequest is the body of the direct invitation-email endpoint,
// also used by the frontend when calendar dispatch is unavailable.
type SendInvitationRequest struct {
	To           string `json:"to" validate:"required"`
	InviteLink   string `json:"inviteLink" validate:"required"`
	GigTitle     string `json:"gigTitle" validate:"required"`
	ProjectName  string `json:"projectName" validate:"required"`
	HostName     string `json:"hostName,omitempty"`
	RoleName     string `json:"roleName" validate:"required"`
	GigDate      string `json:"gigDate" validate:"required"` // YYYY-MM-DD
	GigTime      string `json:"gigTime,omitempty"`
	LocationName string `json:"locationName,omitempty"`
}

// MissingFields returns the names of required fields that are absent.
func (r *SendInvitationRequest) MissingFields() []string {
	var missing []string
	required := map[string]string{
		"to":          r.To,
		"inviteLink":  r.InviteLink,
		"gigTitle":    r.GigTitle,
		"projectName": r.ProjectName,
		"roleName":    r.RoleName,
		"gigDate":     r.GigDate,
	}
	for _, field := range []string{"to", "inviteLink", "gigTitle", "projectName", "roleName", "gigDate"} {
		if required[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

type SendInvitationResponse struct {
	Sent bool `json:"sent"`
}
