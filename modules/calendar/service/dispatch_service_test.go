package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"gig-planner/core/errors"
	"gig-planner/modules/calendar/dto"
	"gig-planner/modules/calendar/entity"
	gigEntity "gig-planner/modules/gig/entity"
	mailerService "gig-planner/modules/mailer/service"

	"github.com/google/uuid"
)

type mockGigStore struct {
	gig   *gigEntity.Gig
	roles []gigEntity.GigRole

	statusUpdates map[uuid.UUID]gigEntity.InvitationStatus
	eventUpdates  map[uuid.UUID]*string
}

func newMockGigStore(gig *gigEntity.Gig, roles []gigEntity.GigRole) *mockGigStore {
	return &mockGigStore{
		gig:           gig,
		roles:         roles,
		statusUpdates: map[uuid.UUID]gigEntity.InvitationStatus{},
		eventUpdates:  map[uuid.UUID]*string{},
	}
}

func (m *mockGigStore) GetGigByID(ctx context.Context, id uuid.UUID) (*gigEntity.Gig, error) {
	if m.gig != nil && m.gig.ID == id {
		return m.gig, nil
	}
	return nil, nil
}

func (m *mockGigStore) GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]gigEntity.GigRole, error) {
	out := make([]gigEntity.GigRole, len(m.roles))
	copy(out, m.roles)
	return out, nil
}

func (m *mockGigStore) UpdateRoleStatus(ctx context.Context, id uuid.UUID, status gigEntity.InvitationStatus) error {
	m.statusUpdates[id] = status
	for i := range m.roles {
		if m.roles[i].ID == id {
			m.roles[i].InvitationStatus = status
		}
	}
	return nil
}

func (m *mockGigStore) SetRoleCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error {
	m.eventUpdates[id] = eventID
	for i := range m.roles {
		if m.roles[i].ID == id {
			m.roles[i].CalendarEventID = eventID
		}
	}
	return nil
}

type mockOAuth struct {
	ensureValidTokenFunc func(ctx context.Context, conn *entity.CalendarConnection) (string, error)
}

func (m *mockOAuth) GetAuthorizationURL(ctx context.Context, userID uuid.UUID, write bool) (string, error) {
	return "", nil
}

func (m *mockOAuth) HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
	return nil, nil
}

func (m *mockOAuth) GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error) {
	return nil, nil
}

func (m *mockOAuth) Disconnect(ctx context.Context, userID uuid.UUID) (bool, error) {
	return false, nil
}

func (m *mockOAuth) EnsureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, error) {
	if m.ensureValidTokenFunc != nil {
		return m.ensureValidTokenFunc(ctx, conn)
	}
	return conn.AccessToken, nil
}

type mockEventClient struct {
	createEventFunc func(ctx context.Context, accessToken, calendarID string, input EventInput) (string, error)
	deleteEventFunc func(ctx context.Context, accessToken, calendarID, eventID string) error
	deleted         []string
}

func (m *mockEventClient) CreateEvent(ctx context.Context, accessToken, calendarID string, input EventInput) (string, error) {
	if m.createEventFunc != nil {
		return m.createEventFunc(ctx, accessToken, calendarID, input)
	}
	return "evt-" + uuid.NewString()[:8], nil
}

func (m *mockEventClient) DeleteEvent(ctx context.Context, accessToken, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	if m.deleteEventFunc != nil {
		return m.deleteEventFunc(ctx, accessToken, calendarID, eventID)
	}
	return nil
}

type mockInviteMailer struct {
	sendFunc func(ctx context.Context, to string, data mailerService.InvitationEmailData) error
	sent     []string
}

func (m *mockInviteMailer) SendInvitation(ctx context.Context, to string, data mailerService.InvitationEmailData) error {
	if m.sendFunc != nil {
		if err := m.sendFunc(ctx, to, data); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, to)
	return nil
}

func strPtr(s string) *string { return &s }

func testGig(ownerID uuid.UUID) *gigEntity.Gig {
	g := &gigEntity.Gig{
		OwnerID:  ownerID,
		Title:    "Autumn Jazz Night",
		Status:   gigEntity.GigStatusDraft,
		StartsAt: time.Now().Add(14 * 24 * time.Hour),
	}
	g.ID = uuid.New()
	return g
}

func pendingRole(gigID uuid.UUID, email string) gigEntity.GigRole {
	r := gigEntity.GigRole{
		GigID:            gigID,
		MusicianName:     "Sam",
		RoleName:         "bass",
		InvitationStatus: gigEntity.InvitationStatusPending,
		InviteToken:      "tok-" + uuid.NewString()[:8],
	}
	r.ID = uuid.New()
	if email != "" {
		r.ContactEmail = strPtr(email)
	}
	return r
}

func writeConnection(ownerID uuid.UUID) *entity.CalendarConnection {
	c := &entity.CalendarConnection{
		UserID:             ownerID,
		Provider:           "google",
		ProviderCalendarID: "primary",
		AccessToken:        "valid-token",
		TokenExpiresAt:     time.Now().Add(time.Hour),
		SyncEnabled:        true,
		WriteAccess:        true,
	}
	c.ID = uuid.New()
	return c
}

func TestSendCalendarInvitesCalendarPath(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	role := pendingRole(gig.ID, "sam@example.com")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{role})

	conn := writeConnection(ownerID)
	repo := &mockCalendarRepo{
		getConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
			return conn, nil
		},
	}

	var gotInput EventInput
	events := &mockEventClient{
		createEventFunc: func(ctx context.Context, token, calendarID string, input EventInput) (string, error) {
			gotInput = input
			return "evt-123", nil
		},
	}
	mail := &mockInviteMailer{}

	svc := NewDispatchService(repo, gigs, &mockOAuth{}, events, mail)
	result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, nil)
	if err != nil {
		t.Fatalf("SendCalendarInvites() error = %v", err)
	}

	if len(result.Invited) != 1 || result.Invited[0] != role.ID.String() {
		t.Errorf("Invited = %v", result.Invited)
	}
	if len(result.Emailed) != 0 || len(result.Failed) != 0 {
		t.Errorf("Emailed = %v, Failed = %v", result.Emailed, result.Failed)
	}
	if len(mail.sent) != 0 {
		t.Errorf("email fallback fired on calendar success: %v", mail.sent)
	}
	if got := gigs.eventUpdates[role.ID]; got == nil || *got != "evt-123" {
		t.Errorf("stored event id = %v", got)
	}
	if gigs.statusUpdates[role.ID] != gigEntity.InvitationStatusInvited {
		t.Errorf("role status = %v", gigs.statusUpdates[role.ID])
	}
	if gotInput.AttendeeEmail != "sam@example.com" {
		t.Errorf("attendee = %q", gotInput.AttendeeEmail)
	}
	if gotInput.Summary != gig.Title {
		t.Errorf("event summary = %q", gotInput.Summary)
	}
}

func TestSendCalendarInvitesEmailFallback(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)

	tests := []struct {
		name string
		conn *entity.CalendarConnection
	}{
		{"no connection", nil},
		{
			"read only connection",
			func() *entity.CalendarConnection {
				c := writeConnection(ownerID)
				c.WriteAccess = false
				return c
			}(),
		},
		{
			"sync disabled",
			func() *entity.CalendarConnection {
				c := writeConnection(ownerID)
				c.SyncEnabled = false
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := pendingRole(gig.ID, "sam@example.com")
			gigs := newMockGigStore(gig, []gigEntity.GigRole{role})

			repo := &mockCalendarRepo{
				getConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
					return tt.conn, nil
				},
			}
			events := &mockEventClient{
				createEventFunc: func(ctx context.Context, token, calendarID string, input EventInput) (string, error) {
					t.Fatal("calendar attempt should not reach the provider")
					return "", nil
				},
			}
			mail := &mockInviteMailer{}

			svc := NewDispatchService(repo, gigs, &mockOAuth{}, events, mail)
			result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, nil)
			if err != nil {
				t.Fatalf("SendCalendarInvites() error = %v", err)
			}

			if len(result.Emailed) != 1 || result.Emailed[0] != role.ID.String() {
				t.Errorf("Emailed = %v", result.Emailed)
			}
			if len(result.Invited) != 0 || len(result.Failed) != 0 {
				t.Errorf("Invited = %v, Failed = %v", result.Invited, result.Failed)
			}
			if len(mail.sent) != 1 || mail.sent[0] != "sam@example.com" {
				t.Errorf("mail sent to %v", mail.sent)
			}
			if gigs.statusUpdates[role.ID] != gigEntity.InvitationStatusInvited {
				t.Errorf("role status = %v", gigs.statusUpdates[role.ID])
			}
		})
	}
}

func TestSendCalendarInvitesPartialFailure(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	noEmail := pendingRole(gig.ID, "")
	withEmail := pendingRole(gig.ID, "ok@example.com")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{noEmail, withEmail})

	repo := &mockCalendarRepo{}
	mail := &mockInviteMailer{}

	svc := NewDispatchService(repo, gigs, &mockOAuth{}, &mockEventClient{}, mail)
	result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, nil)
	if err != nil {
		t.Fatalf("SendCalendarInvites() error = %v", err)
	}

	if len(result.Failed) != 1 {
		t.Fatalf("Failed = %v", result.Failed)
	}
	if result.Failed[0].RoleID != noEmail.ID.String() {
		t.Errorf("failed role = %v, want %v", result.Failed[0].RoleID, noEmail.ID)
	}
	if result.Failed[0].Reason == "" {
		t.Error("failure reason is empty")
	}
	// the second role still got its invite
	if len(result.Emailed) != 1 || result.Emailed[0] != withEmail.ID.String() {
		t.Errorf("Emailed = %v", result.Emailed)
	}
}

func TestSendCalendarInvitesProviderAndEmailBothFail(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	role := pendingRole(gig.ID, "sam@example.com")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{role})

	conn := writeConnection(ownerID)
	repo := &mockCalendarRepo{
		getConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
			return conn, nil
		},
	}
	events := &mockEventClient{
		createEventFunc: func(ctx context.Context, token, calendarID string, input EventInput) (string, error) {
			return "", stderrors.New("quota exceeded")
		},
	}
	mail := &mockInviteMailer{
		sendFunc: func(ctx context.Context, to string, data mailerService.InvitationEmailData) error {
			return stderrors.New("smtp down")
		},
	}

	svc := NewDispatchService(repo, gigs, &mockOAuth{}, events, mail)
	result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, nil)
	if err != nil {
		t.Fatalf("batch must not abort: %v", err)
	}

	if len(result.Failed) != 1 {
		t.Fatalf("Failed = %v", result.Failed)
	}
	if result.Failed[0].Reason == "" {
		t.Error("failure reason is empty")
	}
	if st, ok := gigs.statusUpdates[role.ID]; ok {
		t.Errorf("role status changed to %v despite total failure", st)
	}
}

func TestSendCalendarInvitesSkipsNonPendingRoles(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	invited := pendingRole(gig.ID, "done@example.com")
	invited.InvitationStatus = gigEntity.InvitationStatusAccepted
	gigs := newMockGigStore(gig, []gigEntity.GigRole{invited})

	mail := &mockInviteMailer{}
	svc := NewDispatchService(&mockCalendarRepo{}, gigs, &mockOAuth{}, &mockEventClient{}, mail)

	result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, nil)
	if err != nil {
		t.Fatalf("SendCalendarInvites() error = %v", err)
	}
	if len(result.Invited)+len(result.Emailed)+len(result.Failed) != 0 {
		t.Errorf("non-pending role was dispatched: %+v", result)
	}
}

func TestSendCalendarInvitesForbidden(t *testing.T) {
	setTestConfig(t)

	gig := testGig(uuid.New())
	gigs := newMockGigStore(gig, nil)

	svc := NewDispatchService(&mockCalendarRepo{}, gigs, &mockOAuth{}, &mockEventClient{}, &mockInviteMailer{})
	_, err := svc.SendCalendarInvites(context.Background(), gig.ID, uuid.New(), nil)
	if !errors.Is(err, errors.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestCancelEventsForGigIsIdempotent(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	withEvent := pendingRole(gig.ID, "a@example.com")
	withEvent.CalendarEventID = strPtr("evt-1")
	alsoEvent := pendingRole(gig.ID, "b@example.com")
	alsoEvent.CalendarEventID = strPtr("evt-2")
	plain := pendingRole(gig.ID, "c@example.com")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{withEvent, alsoEvent, plain})

	conn := writeConnection(ownerID)
	repo := &mockCalendarRepo{
		getConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
			return conn, nil
		},
	}
	events := &mockEventClient{}

	svc := NewDispatchService(repo, gigs, &mockOAuth{}, events, &mockInviteMailer{})

	cancelled, err := svc.CancelEventsForGig(context.Background(), gig.ID, ownerID)
	if err != nil {
		t.Fatalf("CancelEventsForGig() error = %v", err)
	}
	if cancelled != 2 {
		t.Errorf("cancelled = %d, want 2", cancelled)
	}
	if len(events.deleted) != 2 {
		t.Errorf("provider deletes = %v", events.deleted)
	}

	// second run finds no stored event ids
	again, err := svc.CancelEventsForGig(context.Background(), gig.ID, ownerID)
	if err != nil {
		t.Fatalf("second CancelEventsForGig() error = %v", err)
	}
	if again != 0 {
		t.Errorf("second run cancelled = %d, want 0", again)
	}
}

func TestCancelEventsClearsIDsWhenProviderUnreachable(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	role := pendingRole(gig.ID, "a@example.com")
	role.CalendarEventID = strPtr("evt-1")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{role})

	conn := writeConnection(ownerID)
	repo := &mockCalendarRepo{
		getConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
			return conn, nil
		},
	}
	// token refresh fails: provider untouchable, local state still cleared
	oauth := &mockOAuth{
		ensureValidTokenFunc: func(ctx context.Context, conn *entity.CalendarConnection) (string, error) {
			return "", stderrors.New("refresh rejected")
		},
	}
	events := &mockEventClient{}

	svc := NewDispatchService(repo, gigs, oauth, events, &mockInviteMailer{})

	cancelled, err := svc.CancelEventsForGig(context.Background(), gig.ID, ownerID)
	if err != nil {
		t.Fatalf("CancelEventsForGig() error = %v", err)
	}
	if cancelled != 1 {
		t.Errorf("cancelled = %d, want 1", cancelled)
	}
	if got := gigs.eventUpdates[role.ID]; got != nil {
		t.Errorf("event id not cleared: %v", got)
	}
	if len(events.deleted) != 0 {
		t.Errorf("provider deletes attempted without a token: %v", events.deleted)
	}
}

func TestCancelEventsAfterDisconnectFailsNotConnected(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	role := pendingRole(gig.ID, "a@example.com")
	role.CalendarEventID = strPtr("evt-1")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{role})

	// connection row already deleted, stored events remain
	svc := NewDispatchService(&mockCalendarRepo{}, gigs, &mockOAuth{}, &mockEventClient{}, &mockInviteMailer{})

	_, err := svc.CancelEventsForGig(context.Background(), gig.ID, ownerID)
	if !errors.Is(err, errors.ErrNotConnected) {
		t.Fatalf("error = %v, want ErrNotConnected", err)
	}
	if got, ok := gigs.eventUpdates[role.ID]; ok {
		t.Errorf("event id mutated on refused cancel: %v", got)
	}

	// roles without stored events are unaffected by the missing connection
	gigs.roles[0].CalendarEventID = nil
	cancelled, err := svc.CancelEventsForGig(context.Background(), gig.ID, ownerID)
	if err != nil {
		t.Fatalf("CancelEventsForGig() error = %v", err)
	}
	if cancelled != 0 {
		t.Errorf("cancelled = %d, want 0", cancelled)
	}
}

func TestGetPendingInvitesPartition(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	ready := pendingRole(gig.ID, "ready@example.com")
	blocked := pendingRole(gig.ID, "")
	done := pendingRole(gig.ID, "done@example.com")
	done.InvitationStatus = gigEntity.InvitationStatusInvited
	gigs := newMockGigStore(gig, []gigEntity.GigRole{ready, blocked, done})

	svc := NewDispatchService(&mockCalendarRepo{}, gigs, &mockOAuth{}, &mockEventClient{}, &mockInviteMailer{})
	resp, err := svc.GetPendingInvites(context.Background(), gig.ID, ownerID)
	if err != nil {
		t.Fatalf("GetPendingInvites() error = %v", err)
	}

	if len(resp.Ready) != 1 || resp.Ready[0].RoleID != ready.ID.String() {
		t.Errorf("Ready = %+v", resp.Ready)
	}
	if len(resp.Blocked) != 1 || resp.Blocked[0].RoleID != blocked.ID.String() {
		t.Errorf("Blocked = %+v", resp.Blocked)
	}
	if resp.Blocked[0].Reason == "" {
		t.Error("blocked role has no reason")
	}
}

func TestSendCalendarInvitesEmailOverrides(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := testGig(ownerID)
	stored := pendingRole(gig.ID, "old@example.com")
	noEmail := pendingRole(gig.ID, "")
	gigs := newMockGigStore(gig, []gigEntity.GigRole{stored, noEmail})

	mail := &mockInviteMailer{}

	// no connection, so both deliveries take the email path
	svc := NewDispatchService(&mockCalendarRepo{}, gigs, &mockOAuth{}, &mockEventClient{}, mail)

	overrides := map[uuid.UUID]string{
		stored.ID:  "sub@example.com",
		noEmail.ID: "filledin@example.com",
	}
	result, err := svc.SendCalendarInvites(context.Background(), gig.ID, ownerID, overrides)
	if err != nil {
		t.Fatalf("SendCalendarInvites() error = %v", err)
	}

	if len(result.Emailed) != 2 {
		t.Fatalf("Emailed = %v, Failed = %v", result.Emailed, result.Failed)
	}
	for _, want := range []string{"sub@example.com", "filledin@example.com"} {
		found := false
		for _, got := range mail.sent {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no email sent to %q, sent = %v", want, mail.sent)
		}
	}
	for _, got := range mail.sent {
		if got == "old@example.com" {
			t.Error("stored email used despite override")
		}
	}
}
