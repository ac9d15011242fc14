package dto

// ConnectURLResponse carries the provider authorization URL the frontend
// should redirect the user to.
type ConnectURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// ConnectionResponse is the sanitized view of a calendar connection.
// Tokens never leave the service layer.
type ConnectionResponse struct {
	ID                 string  `json:"id"`
	Provider           string  `json:"provider"`
	ProviderCalendarID string  `json:"provider_calendar_id"`
	SyncEnabled        bool    `json:"sync_enabled"`
	WriteAccess        bool    `json:"write_access"`
	LastSyncedAt       *string `json:"last_synced_at,omitempty"`
	ConnectedAt        string  `json:"connected_at"`
}

type ConnectionStatusResponse struct {
	Connected  bool                `json:"connected"`
	Connection *ConnectionResponse `json:"connection,omitempty"`
}

type DisconnectResponse struct {
	Disconnected bool `json:"disconnected"`
}

// PendingInvitesResponse partitions a gig's uninvited roles by whether an
// invite can actually be delivered to them.
type PendingInvitesResponse struct {
	Ready   []PendingRole `json:"ready"`
	Blocked []PendingRole `json:"blocked"`
}

type PendingRole struct {
	RoleID       string `json:"role_id"`
	MusicianName string `json:"musician_name"`
	RoleName     string `json:"role_name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// SendInvitesRequest optionally overrides recipients per role for one
// dispatch run, keyed by role id.
type SendInvitesRequest struct {
	EmailOverrides map[string]string `json:"email_overrides,omitempty"`
}

// SendInvitesResult aggregates one dispatch run. Entries are ordered by
// role id so repeated runs compare stably.
type SendInvitesResult struct {
	Invited []string       `json:"invited"`
	Emailed []string       `json:"emailed"`
	Failed  []FailedInvite `json:"failed"`
}

type FailedInvite struct {
	RoleID string `json:"role_id"`
	Reason string `json:"reason"`
}

type CancelEventsResponse struct {
	Cancelled int `json:"cancelled"`
}
