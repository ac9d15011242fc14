package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gig-planner/core/config"
	"gig-planner/core/constants"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/modules/calendar/dto"
	"gig-planner/modules/calendar/entity"
	"gig-planner/modules/calendar/repository"
	gigEntity "gig-planner/modules/gig/entity"
	mailerService "gig-planner/modules/mailer/service"

	"github.com/google/uuid"
)

// defaultGigDuration fills in the event end when a gig has no explicit
// end time.
const defaultGigDuration = 3 * time.Hour

// Per-role failure reasons reported in dispatch results.
const (
	reasonMissingEmail  = "missing_email"
	reasonNotConnected  = "not_connected"
	reasonNoWriteAccess = "no_write_access"
	reasonTokenRefresh  = "token_refresh_failed"
)

// GigStore is the slice of the gig repository the dispatcher needs.
type GigStore interface {
	GetGigByID(ctx context.Context, id uuid.UUID) (*gigEntity.Gig, error)
	GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]gigEntity.GigRole, error)
	UpdateRoleStatus(ctx context.Context, id uuid.UUID, status gigEntity.InvitationStatus) error
	SetRoleCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error
}

// InvitationMailer delivers the email fallback when a calendar invite
// cannot be placed.
type InvitationMailer interface {
	SendInvitation(ctx context.Context, to string, data mailerService.InvitationEmailData) error
}

type DispatchService interface {
	GetPendingInvites(ctx context.Context, gigID, ownerID uuid.UUID) (*dto.PendingInvitesResponse, error)
	SendCalendarInvites(ctx context.Context, gigID, ownerID uuid.UUID, emailOverrides map[uuid.UUID]string) (*dto.SendInvitesResult, error)
	CancelEventsForGig(ctx context.Context, gigID, requesterID uuid.UUID) (int, error)
}

type dispatchService struct {
	repo   repository.CalendarRepository
	gigs   GigStore
	oauth  OAuthService
	events EventClient
	mailer InvitationMailer
}

func NewDispatchService(
	repo repository.CalendarRepository,
	gigs GigStore,
	oauth OAuthService,
	events EventClient,
	mailer InvitationMailer,
) DispatchService {
	return &dispatchService{
		repo:   repo,
		gigs:   gigs,
		oauth:  oauth,
		events: events,
		mailer: mailer,
	}
}

// GetPendingInvites partitions a gig's not-yet-invited roles into ones an
// invite can be sent to and ones blocked on a missing contact email.
func (s *dispatchService) GetPendingInvites(ctx context.Context, gigID, ownerID uuid.UUID) (*dto.PendingInvitesResponse, error) {
	_, roles, err := s.ownedGigWithRoles(ctx, gigID, ownerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PendingInvitesResponse{
		Ready:   []dto.PendingRole{},
		Blocked: []dto.PendingRole{},
	}
	for i := range roles {
		role := &roles[i]
		if role.InvitationStatus != gigEntity.InvitationStatusPending {
			continue
		}
		pr := dto.PendingRole{
			RoleID:       role.ID.String(),
			MusicianName: role.MusicianName,
			RoleName:     role.RoleName,
		}
		if role.HasContactEmail() {
			pr.ContactEmail = *role.ContactEmail
			resp.Ready = append(resp.Ready, pr)
		} else {
			pr.Reason = reasonMissingEmail
			resp.Blocked = append(resp.Blocked, pr)
		}
	}
	return resp, nil
}

// SendCalendarInvites runs one dispatch over the gig's pending roles. Each
// role gets a calendar attempt first and an email fallback second; one
// role's failure never stops the rest of the batch. The connection row is
// re-read per role so a mid-batch disconnect downgrades the remaining
// roles to email instead of using stale credentials. emailOverrides maps a
// role id to a one-off recipient used instead of the stored contact email.
func (s *dispatchService) SendCalendarInvites(ctx context.Context, gigID, ownerID uuid.UUID, emailOverrides map[uuid.UUID]string) (*dto.SendInvitesResult, error) {
	gig, roles, err := s.ownedGigWithRoles(ctx, gigID, ownerID)
	if err != nil {
		return nil, err
	}

	var targets []*gigEntity.GigRole
	for i := range roles {
		if roles[i].InvitationStatus == gigEntity.InvitationStatusPending {
			targets = append(targets, &roles[i])
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].ID.String() < targets[j].ID.String()
	})

	result := &dto.SendInvitesResult{
		Invited: []string{},
		Emailed: []string{},
		Failed:  []dto.FailedInvite{},
	}

	for _, role := range targets {
		email := roleEmail(role, emailOverrides)
		if email == "" {
			result.Failed = append(result.Failed, dto.FailedInvite{
				RoleID: role.ID.String(),
				Reason: reasonMissingEmail,
			})
			continue
		}

		calReason := s.tryCalendarInvite(ctx, gig, role, email)
		if calReason == "" {
			result.Invited = append(result.Invited, role.ID.String())
			continue
		}

		logger.Info("DispatchService:SendCalendarInvites:EmailFallback",
			"role_id", role.ID, "reason", calReason)

		if err := s.mailer.SendInvitation(ctx, email, s.emailData(gig, role)); err != nil {
			result.Failed = append(result.Failed, dto.FailedInvite{
				RoleID: role.ID.String(),
				Reason: fmt.Sprintf("%s; email delivery failed", calReason),
			})
			continue
		}

		if err := s.gigs.UpdateRoleStatus(ctx, role.ID, gigEntity.InvitationStatusInvited); err != nil {
			logger.Error("DispatchService:SendCalendarInvites:UpdateStatus:Error",
				"role_id", role.ID, "error", err)
		}
		result.Emailed = append(result.Emailed, role.ID.String())
	}

	logger.Info("DispatchService:SendCalendarInvites:Done",
		"gig_id", gigID,
		"invited", len(result.Invited),
		"emailed", len(result.Emailed),
		"failed", len(result.Failed),
	)
	return result, nil
}

// tryCalendarInvite attempts to place a provider event for one role.
// It returns an empty string on success, otherwise the reason the email
// fallback is taken.
func (s *dispatchService) tryCalendarInvite(ctx context.Context, gig *gigEntity.Gig, role *gigEntity.GigRole, email string) string {
	conn, err := s.repo.GetConnection(ctx, gig.OwnerID, constants.ProviderGoogle)
	if err != nil || conn == nil || !conn.SyncEnabled {
		return reasonNotConnected
	}
	if !conn.WriteAccess {
		return reasonNoWriteAccess
	}

	accessToken, err := s.oauth.EnsureValidToken(ctx, conn)
	if err != nil {
		return reasonTokenRefresh
	}

	eventID, err := s.events.CreateEvent(ctx, accessToken, conn.ProviderCalendarID, s.eventInput(gig, role, email))
	if err != nil {
		logger.Error("DispatchService:tryCalendarInvite:CreateEvent:Error",
			"role_id", role.ID, "error", err)
		_ = s.repo.CreateSyncLog(ctx, &entity.CalendarSyncLog{
			ConnectionID: conn.ID,
			Operation:    entity.SyncOpInviteFailed,
			Detail:       err.Error(),
		})
		return "provider error: " + err.Error()
	}

	if err := s.gigs.SetRoleCalendarEvent(ctx, role.ID, &eventID); err != nil {
		logger.Error("DispatchService:tryCalendarInvite:SetEventID:Error",
			"role_id", role.ID, "error", err)
	}
	if err := s.gigs.UpdateRoleStatus(ctx, role.ID, gigEntity.InvitationStatusInvited); err != nil {
		logger.Error("DispatchService:tryCalendarInvite:UpdateStatus:Error",
			"role_id", role.ID, "error", err)
	}
	role.CalendarEventID = &eventID
	role.InvitationStatus = gigEntity.InvitationStatusInvited

	_ = s.repo.CreateSyncLog(ctx, &entity.CalendarSyncLog{
		ConnectionID: conn.ID,
		Operation:    entity.SyncOpInviteSent,
		Detail:       "role " + role.ID.String(),
	})
	_ = s.repo.TouchLastSynced(ctx, conn.ID)

	return ""
}

// CancelEventsForGig clears every role's stored event id and best-effort
// deletes the provider events. While a connection exists the local ids are
// cleared even when the provider call fails, so a second run is a no-op
// returning zero. When events remain but the connection row is gone the
// call fails with ErrNotConnected instead of stranding provider events.
func (s *dispatchService) CancelEventsForGig(ctx context.Context, gigID, requesterID uuid.UUID) (int, error) {
	gig, roles, err := s.ownedGigWithRoles(ctx, gigID, requesterID)
	if err != nil {
		return 0, err
	}

	var pending []*gigEntity.GigRole
	for i := range roles {
		if roles[i].CalendarEventID != nil && *roles[i].CalendarEventID != "" {
			pending = append(pending, &roles[i])
		}
	}
	if len(pending) == 0 {
		logger.Info("DispatchService:CancelEventsForGig:Done", "gig_id", gigID, "cancelled", 0)
		return 0, nil
	}

	conn, err := s.repo.GetConnection(ctx, gig.OwnerID, constants.ProviderGoogle)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrPersistence, "failed to load calendar connection", err)
	}
	if conn == nil {
		return 0, errors.NewAppError(errors.ErrNotConnected, "calendar events exist but no calendar connection is stored", nil)
	}

	var accessToken string
	if tok, tokErr := s.oauth.EnsureValidToken(ctx, conn); tokErr == nil {
		accessToken = tok
	}

	cancelled := 0
	for _, role := range pending {
		if accessToken != "" {
			if err := s.events.DeleteEvent(ctx, accessToken, conn.ProviderCalendarID, *role.CalendarEventID); err != nil {
				logger.Error("DispatchService:CancelEventsForGig:DeleteEvent:Error",
					"role_id", role.ID, "error", err)
			} else {
				_ = s.repo.CreateSyncLog(ctx, &entity.CalendarSyncLog{
					ConnectionID: conn.ID,
					Operation:    entity.SyncOpEventDeleted,
					Detail:       "role " + role.ID.String(),
				})
			}
		}

		if err := s.gigs.SetRoleCalendarEvent(ctx, role.ID, nil); err != nil {
			logger.Error("DispatchService:CancelEventsForGig:ClearEventID:Error",
				"role_id", role.ID, "error", err)
			continue
		}
		role.CalendarEventID = nil
		cancelled++
	}

	logger.Info("DispatchService:CancelEventsForGig:Done", "gig_id", gigID, "cancelled", cancelled)
	return cancelled, nil
}

func (s *dispatchService) ownedGigWithRoles(ctx context.Context, gigID, ownerID uuid.UUID) (*gigEntity.Gig, []gigEntity.GigRole, error) {
	gig, err := s.gigs.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrPersistence, "failed to load gig", err)
	}
	if gig == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "gig not found", nil)
	}
	if gig.OwnerID != ownerID {
		return nil, nil, errors.NewAppError(errors.ErrForbidden, "gig belongs to a different user", nil)
	}

	roles, err := s.gigs.GetRolesByGigID(ctx, gigID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrPersistence, "failed to load gig roles", err)
	}
	return gig, roles, nil
}

// roleEmail resolves the recipient for one role, preferring a per-call
// override over the stored contact email.
func roleEmail(role *gigEntity.GigRole, overrides map[uuid.UUID]string) string {
	if email, ok := overrides[role.ID]; ok && email != "" {
		return email
	}
	if role.HasContactEmail() {
		return *role.ContactEmail
	}
	return ""
}

func (s *dispatchService) eventInput(gig *gigEntity.Gig, role *gigEntity.GigRole, attendee string) EventInput {
	end := gig.StartsAt.Add(defaultGigDuration)
	if gig.EndsAt != nil {
		end = *gig.EndsAt
	}

	description := fmt.Sprintf("You are booked as %s.", role.RoleName)
	if gig.Notes != nil && *gig.Notes != "" {
		description += "\n\n" + *gig.Notes
	}
	description += "\n\nRespond here: " + s.inviteLink(role)

	input := EventInput{
		Summary:       gig.Title,
		Description:   description,
		Start:         gig.StartsAt,
		End:           end,
		AttendeeEmail: attendee,
	}
	if gig.LocationName != nil {
		input.Location = *gig.LocationName
	}
	return input
}

func (s *dispatchService) emailData(gig *gigEntity.Gig, role *gigEntity.GigRole) mailerService.InvitationEmailData {
	data := mailerService.InvitationEmailData{
		InviteLink:  s.inviteLink(role),
		GigTitle:    gig.Title,
		ProjectName: "Gig Planner",
		RoleName:    role.RoleName,
		GigDate:     gig.StartsAt,
		GigTime:     gig.StartsAt.Format("3:04 PM"),
	}
	if gig.HostName != nil {
		data.HostName = *gig.HostName
	}
	if gig.LocationName != nil {
		data.LocationName = *gig.LocationName
	}
	return data
}

func (s *dispatchService) inviteLink(role *gigEntity.GigRole) string {
	base := "http://localhost:3000"
	if cfg, ok := config.GetSafe(); ok && cfg.Server.FrontendURL != "" {
		base = cfg.Server.FrontendURL
	}
	return base + "/invites/" + role.InviteToken
}
