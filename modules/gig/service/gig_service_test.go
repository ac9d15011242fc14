package service

import (
	"context"
	"testing"
	"time"

	"gig-planner/core/config"
	"gig-planner/core/errors"
	"gig-planner/core/params"
	"gig-planner/modules/gig/entity"

	"github.com/google/uuid"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Server: config.ServerConfig{FrontendURL: "https://app.example.com"},
		JWT:    config.JWTConfig{Secret: "test-secret"},
	})
}

type mockGigRepo struct {
	createGigFunc        func(ctx context.Context, gig *entity.Gig) (*entity.Gig, error)
	getGigByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.Gig, error)
	listGigsByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) ([]entity.Gig, int, error)
	updateGigFunc        func(ctx context.Context, gig *entity.Gig) error
	updateGigStatusFunc  func(ctx context.Context, id uuid.UUID, status entity.GigStatus) error
	setGigSetlistFunc    func(ctx context.Context, id uuid.UUID, url string) error
	deleteGigFunc        func(ctx context.Context, id uuid.UUID) error
	createRoleFunc       func(ctx context.Context, role *entity.GigRole) (*entity.GigRole, error)
	getRoleByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.GigRole, error)
	getRoleByTokenFunc   func(ctx context.Context, token string) (*entity.GigRole, error)
	getRolesByGigIDFunc  func(ctx context.Context, gigID uuid.UUID) ([]entity.GigRole, error)
	updateRoleStatusFunc func(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error
	updateRoleEmailFunc  func(ctx context.Context, id uuid.UUID, email string) error
	setRoleEventFunc     func(ctx context.Context, id uuid.UUID, eventID *string) error
	deleteRoleFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockGigRepo) CreateGig(ctx context.Context, gig *entity.Gig) (*entity.Gig, error) {
	if m.createGigFunc != nil {
		return m.createGigFunc(ctx, gig)
	}
	gig.ID = uuid.New()
	return gig, nil
}

func (m *mockGigRepo) GetGigByID(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	if m.getGigByIDFunc != nil {
		return m.getGigByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGigRepo) ListGigsByOwner(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) ([]entity.Gig, int, error) {
	if m.listGigsByOwnerFunc != nil {
		return m.listGigsByOwnerFunc(ctx, ownerID, p)
	}
	return nil, 0, nil
}

func (m *mockGigRepo) UpdateGig(ctx context.Context, gig *entity.Gig) error {
	if m.updateGigFunc != nil {
		return m.updateGigFunc(ctx, gig)
	}
	return nil
}

func (m *mockGigRepo) UpdateGigStatus(ctx context.Context, id uuid.UUID, status entity.GigStatus) error {
	if m.updateGigStatusFunc != nil {
		return m.updateGigStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockGigRepo) SetGigSetlist(ctx context.Context, id uuid.UUID, url string) error {
	if m.setGigSetlistFunc != nil {
		return m.setGigSetlistFunc(ctx, id, url)
	}
	return nil
}

func (m *mockGigRepo) DeleteGig(ctx context.Context, id uuid.UUID) error {
	if m.deleteGigFunc != nil {
		return m.deleteGigFunc(ctx, id)
	}
	return nil
}

func (m *mockGigRepo) CreateRole(ctx context.Context, role *entity.GigRole) (*entity.GigRole, error) {
	if m.createRoleFunc != nil {
		return m.createRoleFunc(ctx, role)
	}
	role.ID = uuid.New()
	return role, nil
}

func (m *mockGigRepo) GetRoleByID(ctx context.Context, id uuid.UUID) (*entity.GigRole, error) {
	if m.getRoleByIDFunc != nil {
		return m.getRoleByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGigRepo) GetRoleByToken(ctx context.Context, token string) (*entity.GigRole, error) {
	if m.getRoleByTokenFunc != nil {
		return m.getRoleByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockGigRepo) GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]entity.GigRole, error) {
	if m.getRolesByGigIDFunc != nil {
		return m.getRolesByGigIDFunc(ctx, gigID)
	}
	return nil, nil
}

func (m *mockGigRepo) UpdateRoleStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	if m.updateRoleStatusFunc != nil {
		return m.updateRoleStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockGigRepo) UpdateRoleEmail(ctx context.Context, id uuid.UUID, email string) error {
	if m.updateRoleEmailFunc != nil {
		return m.updateRoleEmailFunc(ctx, id, email)
	}
	return nil
}

func (m *mockGigRepo) SetRoleCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error {
	if m.setRoleEventFunc != nil {
		return m.setRoleEventFunc(ctx, id, eventID)
	}
	return nil
}

func (m *mockGigRepo) DeleteRole(ctx context.Context, id uuid.UUID) error {
	if m.deleteRoleFunc != nil {
		return m.deleteRoleFunc(ctx, id)
	}
	return nil
}

type mockCanceller struct {
	calls []uuid.UUID
}

func (m *mockCanceller) CancelEventsForGig(ctx context.Context, gigID, requesterID uuid.UUID) (int, error) {
	m.calls = append(m.calls, gigID)
	return 1, nil
}

type mockReminders struct {
	scheduled []uuid.UUID
}

func (m *mockReminders) ScheduleGigReminder(ctx context.Context, gigID uuid.UUID, startsAt time.Time) error {
	m.scheduled = append(m.scheduled, gigID)
	return nil
}

func ownedGigFixture(ownerID uuid.UUID) *entity.Gig {
	g := &entity.Gig{
		OwnerID:  ownerID,
		Title:    "Autumn Jazz Night",
		Status:   entity.GigStatusDraft,
		StartsAt: time.Now().Add(30 * 24 * time.Hour),
	}
	g.ID = uuid.New()
	return g
}

func roleFixture(gigID uuid.UUID, status entity.InvitationStatus) *entity.GigRole {
	email := "sam@example.com"
	r := &entity.GigRole{
		GigID:            gigID,
		MusicianName:     "Sam",
		RoleName:         "bass",
		ContactEmail:     &email,
		InvitationStatus: status,
		InviteToken:      "invite-token-123",
	}
	r.ID = uuid.New()
	return r
}

func newServiceWithRoleFixture(gig *entity.Gig, role *entity.GigRole) (GigService, *mockGigRepo) {
	repo := &mockGigRepo{
		getGigByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
			if gig != nil && gig.ID == id {
				return gig, nil
			}
			return nil, nil
		},
		getRoleByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.GigRole, error) {
			if role != nil && role.ID == id {
				return role, nil
			}
			return nil, nil
		},
		getRoleByTokenFunc: func(ctx context.Context, token string) (*entity.GigRole, error) {
			if role != nil && role.InviteToken == token {
				return role, nil
			}
			return nil, nil
		},
	}
	return NewGigService(repo, nil, nil, nil), repo
}

func TestUpdateRoleStatusTransitions(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name     string
		from     entity.InvitationStatus
		to       string
		wantCode errors.ErrorCode
	}{
		{"record acceptance", entity.InvitationStatusInvited, "accepted", ""},
		{"record decline", entity.InvitationStatusInvited, "declined", ""},
		{"accepted musician drops out", entity.InvitationStatusAccepted, "needs_sub", ""},
		{"replace after drop out", entity.InvitationStatusNeedsSub, "replaced", ""},
		{"cannot accept before inviting", entity.InvitationStatusPending, "accepted", errors.ErrInvalidTransition},
		{"declined is terminal", entity.InvitationStatusDeclined, "accepted", errors.ErrInvalidTransition},
		{"replaced is terminal", entity.InvitationStatusReplaced, "needs_sub", errors.ErrInvalidTransition},
		{"unknown status rejected", entity.InvitationStatusInvited, "cancelled", errors.ErrInvalidInput},
	}

	ownerID := uuid.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gig := ownedGigFixture(ownerID)
			role := roleFixture(gig.ID, tt.from)
			svc, _ := newServiceWithRoleFixture(gig, role)

			resp, appErr := svc.UpdateRoleStatus(context.Background(), ownerID, role.ID, tt.to)
			if tt.wantCode == "" {
				if appErr != nil {
					t.Fatalf("UpdateRoleStatus() error = %v", appErr)
				}
				if resp.StoredStatus != tt.to {
					t.Errorf("stored status = %q, want %q", resp.StoredStatus, tt.to)
				}
				return
			}
			if appErr == nil {
				t.Fatalf("expected %v error", tt.wantCode)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("error code = %v, want %v", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdateRoleStatusWrongOwner(t *testing.T) {
	setTestConfig(t)

	gig := ownedGigFixture(uuid.New())
	role := roleFixture(gig.ID, entity.InvitationStatusInvited)
	svc, _ := newServiceWithRoleFixture(gig, role)

	_, appErr := svc.UpdateRoleStatus(context.Background(), uuid.New(), role.ID, "accepted")
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("error = %v, want ErrForbidden", appErr)
	}
}

func TestRespondByToken(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name     string
		from     entity.InvitationStatus
		action   string
		wantCode errors.ErrorCode
	}{
		{"accept", entity.InvitationStatusInvited, "accept", ""},
		{"decline", entity.InvitationStatusInvited, "decline", ""},
		{"already declined", entity.InvitationStatusDeclined, "accept", errors.ErrInvalidTransition},
		{"not yet invited", entity.InvitationStatusPending, "accept", errors.ErrInvalidTransition},
		{"bogus action", entity.InvitationStatusInvited, "maybe", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gig := ownedGigFixture(uuid.New())
			role := roleFixture(gig.ID, tt.from)
			svc, _ := newServiceWithRoleFixture(gig, role)

			_, appErr := svc.RespondByToken(context.Background(), role.InviteToken, tt.action)
			if tt.wantCode == "" {
				if appErr != nil {
					t.Fatalf("RespondByToken() error = %v", appErr)
				}
				return
			}
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("error = %v, want %v", appErr, tt.wantCode)
			}
		})
	}
}

func TestRespondByTokenUnknownToken(t *testing.T) {
	setTestConfig(t)

	svc, _ := newServiceWithRoleFixture(nil, nil)
	_, appErr := svc.RespondByToken(context.Background(), "no-such-token", "accept")
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", appErr)
	}
}

func TestDeleteGigCancelsEventsFirst(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := ownedGigFixture(ownerID)

	var order []string
	repo := &mockGigRepo{
		getGigByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
			return gig, nil
		},
		deleteGigFunc: func(ctx context.Context, id uuid.UUID) error {
			order = append(order, "delete")
			return nil
		},
	}
	canceller := &cancellerRecordingOrder{order: &order}

	svc := NewGigService(repo, nil, canceller, nil)
	if appErr := svc.DeleteGig(context.Background(), ownerID, gig.ID); appErr != nil {
		t.Fatalf("DeleteGig() error = %v", appErr)
	}

	if len(order) != 2 || order[0] != "cancel" || order[1] != "delete" {
		t.Errorf("order = %v, want [cancel delete]", order)
	}
}

type cancellerRecordingOrder struct {
	order *[]string
}

func (c *cancellerRecordingOrder) CancelEventsForGig(ctx context.Context, gigID, requesterID uuid.UUID) (int, error) {
	*c.order = append(*c.order, "cancel")
	return 0, nil
}

func TestConfirmGigSchedulesReminder(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := ownedGigFixture(ownerID)
	repo := &mockGigRepo{
		getGigByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
			return gig, nil
		},
	}
	reminders := &mockReminders{}

	svc := NewGigService(repo, nil, nil, reminders)
	resp, appErr := svc.ConfirmGig(context.Background(), ownerID, gig.ID)
	if appErr != nil {
		t.Fatalf("ConfirmGig() error = %v", appErr)
	}
	if resp.Status != string(entity.GigStatusConfirmed) {
		t.Errorf("status = %q", resp.Status)
	}
	if len(reminders.scheduled) != 1 || reminders.scheduled[0] != gig.ID {
		t.Errorf("scheduled = %v", reminders.scheduled)
	}
}

func TestDuplicateGigResetsLineup(t *testing.T) {
	setTestConfig(t)

	ownerID := uuid.New()
	gig := ownedGigFixture(ownerID)
	gig.Status = entity.GigStatusConfirmed

	eventID := "evt-99"
	src := roleFixture(gig.ID, entity.InvitationStatusAccepted)
	src.CalendarEventID = &eventID

	var createdRoles []entity.GigRole
	repo := &mockGigRepo{
		getGigByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
			if id == gig.ID {
				return gig, nil
			}
			return nil, nil
		},
		getRolesByGigIDFunc: func(ctx context.Context, gigID uuid.UUID) ([]entity.GigRole, error) {
			if gigID == gig.ID {
				return []entity.GigRole{*src}, nil
			}
			return nil, nil
		},
		createRoleFunc: func(ctx context.Context, role *entity.GigRole) (*entity.GigRole, error) {
			role.ID = uuid.New()
			createdRoles = append(createdRoles, *role)
			return role, nil
		},
	}

	svc := NewGigService(repo, nil, nil, nil)
	resp, appErr := svc.DuplicateGig(context.Background(), ownerID, gig.ID)
	if appErr != nil {
		t.Fatalf("DuplicateGig() error = %v", appErr)
	}

	if resp.Status != string(entity.GigStatusDraft) {
		t.Errorf("duplicate status = %q, want draft", resp.Status)
	}
	if len(createdRoles) != 1 {
		t.Fatalf("created roles = %d", len(createdRoles))
	}
	dup := createdRoles[0]
	if dup.InvitationStatus != entity.InvitationStatusPending {
		t.Errorf("duplicated role status = %v, want pending", dup.InvitationStatus)
	}
	if dup.CalendarEventID != nil {
		t.Error("duplicated role kept the provider event id")
	}
	if dup.InviteToken == src.InviteToken {
		t.Error("duplicated role reused the invite token")
	}
}
