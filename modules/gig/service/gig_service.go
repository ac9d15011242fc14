package service

import (
	"context"
	"fmt"
	"time"

	"gig-planner/core/config"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/core/params"
	"gig-planner/core/utils"
	"gig-planner/modules/gig/dto"
	"gig-planner/modules/gig/entity"
	"gig-planner/modules/gig/mapper"
	"gig-planner/modules/gig/repository"
	notifDto "gig-planner/modules/notification/dto"
	notifEntity "gig-planner/modules/notification/entity"
	notifService "gig-planner/modules/notification/service"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventCanceller removes provider calendar events for a gig's roles.
// Implemented by the calendar dispatch service; must run before the gig
// row is deleted because role lookup needs the gig to still exist.
type EventCanceller interface {
	CancelEventsForGig(ctx context.Context, gigID, requesterID uuid.UUID) (int, error)
}

// ReminderScheduler queues the pre-gig reminder email for a confirmed gig.
type ReminderScheduler interface {
	ScheduleGigReminder(ctx context.Context, gigID uuid.UUID, startsAt time.Time) error
}

type GigService interface {
	CreateGig(ctx context.Context, ownerID uuid.UUID, req *dto.CreateGigRequest) (*dto.GigResponse, *errors.AppError)
	GetGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError)
	ListGigs(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) (*dto.PaginatedGigResponse, *errors.AppError)
	UpdateGig(ctx context.Context, ownerID, gigID uuid.UUID, req *dto.UpdateGigRequest) (*dto.GigResponse, *errors.AppError)
	ConfirmGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError)
	DeleteGig(ctx context.Context, ownerID, gigID uuid.UUID) *errors.AppError
	DuplicateGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError)

	AddRole(ctx context.Context, ownerID, gigID uuid.UUID, req *dto.AddRoleRequest) (*dto.RoleResponse, *errors.AppError)
	RemoveRole(ctx context.Context, ownerID, roleID uuid.UUID) *errors.AppError
	UpdateRoleEmail(ctx context.Context, ownerID, roleID uuid.UUID, email string) (*dto.RoleResponse, *errors.AppError)
	UpdateRoleStatus(ctx context.Context, ownerID, roleID uuid.UUID, newStatus string) (*dto.RoleResponse, *errors.AppError)

	GetInviteByToken(ctx context.Context, token string) (*dto.InviteDetailsResponse, *errors.AppError)
	RespondByToken(ctx context.Context, token string, action string) (*dto.InviteDetailsResponse, *errors.AppError)
}

type gigService struct {
	repo         repository.GigRepository
	notifService *notifService.NotificationService
	canceller    EventCanceller
	reminders    ReminderScheduler
}

func NewGigService(
	repo repository.GigRepository,
	notifService *notifService.NotificationService,
	canceller EventCanceller,
	reminders ReminderScheduler,
) GigService {
	return &gigService{
		repo:         repo,
		notifService: notifService,
		canceller:    canceller,
		reminders:    reminders,
	}
}

func frontendURL() string {
	if cfg, ok := config.GetSafe(); ok {
		return cfg.Server.FrontendURL
	}
	return ""
}

func (s *gigService) CreateGig(ctx context.Context, ownerID uuid.UUID, req *dto.CreateGigRequest) (*dto.GigResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "starts_at must be RFC3339", err)
	}

	gig := &entity.Gig{
		OwnerID:      ownerID,
		Title:        req.Title,
		Slug:         makeSlug(req.Title),
		Status:       entity.GigStatusDraft,
		StartsAt:     startsAt,
		LocationName: req.LocationName,
		HostName:     req.HostName,
		Notes:        req.Notes,
	}
	if req.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "ends_at must be RFC3339", err)
		}
		gig.EndsAt = &endsAt
	}

	created, err := s.repo.CreateGig(ctx, gig)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to create gig", err)
	}

	logger.Info("GigService:CreateGig:Success", "gig_id", created.ID, "owner_id", ownerID)
	return mapper.ToGigResponse(created, nil, frontendURL()), nil
}

func (s *gigService) GetGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError) {
	gig, appErr := s.ownedGig(ctx, ownerID, gigID)
	if appErr != nil {
		return nil, appErr
	}
	roles, err := s.repo.GetRolesByGigID(ctx, gigID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load roles", err)
	}
	return mapper.ToGigResponse(gig, roles, frontendURL()), nil
}

func (s *gigService) ListGigs(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) (*dto.PaginatedGigResponse, *errors.AppError) {
	gigs, total, err := s.repo.ListGigsByOwner(ctx, ownerID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to list gigs", err)
	}

	items := make([]dto.GigResponse, 0, len(gigs))
	for i := range gigs {
		items = append(items, *mapper.ToGigResponse(&gigs[i], nil, ""))
	}

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}
	return &dto.PaginatedGigResponse{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (s *gigService) UpdateGig(ctx context.Context, ownerID, gigID uuid.UUID, req *dto.UpdateGigRequest) (*dto.GigResponse, *errors.AppError) {
	gig, appErr := s.ownedGig(ctx, ownerID, gigID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "starts_at must be RFC3339", err)
		}
		gig.StartsAt = startsAt
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "ends_at must be RFC3339", err)
		}
		gig.EndsAt = &endsAt
	}
	if req.LocationName != nil {
		gig.LocationName = req.LocationName
	}
	if req.HostName != nil {
		gig.HostName = req.HostName
	}
	if req.Notes != nil {
		gig.Notes = req.Notes
	}

	if err := s.repo.UpdateGig(ctx, gig); err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to update gig", err)
	}

	roles, _ := s.repo.GetRolesByGigID(ctx, gigID)
	return mapper.ToGigResponse(gig, roles, frontendURL()), nil
}

func (s *gigService) ConfirmGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError) {
	gig, appErr := s.ownedGig(ctx, ownerID, gigID)
	if appErr != nil {
		return nil, appErr
	}
	if gig.Status == entity.GigStatusCancelled {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cancelled gig cannot be confirmed", nil)
	}

	if err := s.repo.UpdateGigStatus(ctx, gigID, entity.GigStatusConfirmed); err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to confirm gig", err)
	}
	gig.Status = entity.GigStatusConfirmed

	if s.reminders != nil {
		if err := s.reminders.ScheduleGigReminder(ctx, gigID, gig.StartsAt); err != nil {
			logger.Error("GigService:ConfirmGig:ScheduleReminder:Error", "error", err, "gig_id", gigID)
		}
	}

	roles, _ := s.repo.GetRolesByGigID(ctx, gigID)
	return mapper.ToGigResponse(gig, roles, frontendURL()), nil
}

// DeleteGig cancels provider events first, then removes the gig. Roles and
// their invite tokens cascade with the row.
func (s *gigService) DeleteGig(ctx context.Context, ownerID, gigID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedGig(ctx, ownerID, gigID); appErr != nil {
		return appErr
	}

	if s.canceller != nil {
		if _, err := s.canceller.CancelEventsForGig(ctx, gigID, ownerID); err != nil {
			// Cancellation is best effort; deletion still proceeds.
			logger.Warn("GigService:DeleteGig:CancelEvents:Error", "error", err, "gig_id", gigID)
		}
	}

	if err := s.repo.DeleteGig(ctx, gigID); err != nil {
		return errors.NewAppError(errors.ErrPersistence, "failed to delete gig", err)
	}
	logger.Info("GigService:DeleteGig:Success", "gig_id", gigID)
	return nil
}

// DuplicateGig copies a gig and its lineup with fresh identifiers. Statuses
// reset to pending, provider event ids are cleared, invite tokens are new.
func (s *gigService) DuplicateGig(ctx context.Context, ownerID, gigID uuid.UUID) (*dto.GigResponse, *errors.AppError) {
	gig, appErr := s.ownedGig(ctx, ownerID, gigID)
	if appErr != nil {
		return nil, appErr
	}
	roles, err := s.repo.GetRolesByGigID(ctx, gigID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load roles", err)
	}

	copyTitle := fmt.Sprintf("%s (copy)", gig.Title)
	dup := &entity.Gig{
		OwnerID:      ownerID,
		Title:        copyTitle,
		Slug:         makeSlug(copyTitle),
		Status:       entity.GigStatusDraft,
		StartsAt:     gig.StartsAt,
		EndsAt:       gig.EndsAt,
		LocationName: gig.LocationName,
		HostName:     gig.HostName,
		Notes:        gig.Notes,
	}
	created, err := s.repo.CreateGig(ctx, dup)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to duplicate gig", err)
	}

	var newRoles []entity.GigRole
	for i := range roles {
		role := &entity.GigRole{
			GigID:            created.ID,
			MusicianName:     roles[i].MusicianName,
			RoleName:         roles[i].RoleName,
			ContactEmail:     roles[i].ContactEmail,
			InvitationStatus: entity.InvitationStatusPending,
			InviteToken:      utils.GenerateInviteToken(),
		}
		createdRole, err := s.repo.CreateRole(ctx, role)
		if err != nil {
			logger.Error("GigService:DuplicateGig:CreateRole:Error", "error", err, "gig_id", created.ID)
			continue
		}
		newRoles = append(newRoles, *createdRole)
	}

	logger.Info("GigService:DuplicateGig:Success", "source_gig_id", gigID, "new_gig_id", created.ID, "roles", len(newRoles))
	return mapper.ToGigResponse(created, newRoles, frontendURL()), nil
}

func (s *gigService) AddRole(ctx context.Context, ownerID, gigID uuid.UUID, req *dto.AddRoleRequest) (*dto.RoleResponse, *errors.AppError) {
	gig, appErr := s.ownedGig(ctx, ownerID, gigID)
	if appErr != nil {
		return nil, appErr
	}
	if req.MusicianName == "" || req.RoleName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "musician_name and role_name are required", nil)
	}

	role := &entity.GigRole{
		GigID:            gigID,
		MusicianName:     req.MusicianName,
		RoleName:         req.RoleName,
		ContactEmail:     req.ContactEmail,
		InvitationStatus: entity.InvitationStatusPending,
		InviteToken:      utils.GenerateInviteToken(),
	}
	created, err := s.repo.CreateRole(ctx, role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to add role", err)
	}

	resp := mapper.ToRoleResponse(gig, created, frontendURL())
	return &resp, nil
}

func (s *gigService) RemoveRole(ctx context.Context, ownerID, roleID uuid.UUID) *errors.AppError {
	_, _, appErr := s.ownedRole(ctx, ownerID, roleID)
	if appErr != nil {
		return appErr
	}
	if err := s.repo.DeleteRole(ctx, roleID); err != nil {
		return errors.NewAppError(errors.ErrPersistence, "failed to remove role", err)
	}
	return nil
}

func (s *gigService) UpdateRoleEmail(ctx context.Context, ownerID, roleID uuid.UUID, email string) (*dto.RoleResponse, *errors.AppError) {
	gig, role, appErr := s.ownedRole(ctx, ownerID, roleID)
	if appErr != nil {
		return nil, appErr
	}
	if email == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "contact_email is required", nil)
	}
	if err := s.repo.UpdateRoleEmail(ctx, roleID, email); err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to update contact email", err)
	}
	role.ContactEmail = &email
	resp := mapper.ToRoleResponse(gig, role, frontendURL())
	return &resp, nil
}

// UpdateRoleStatus validates the edge against the transition graph before
// persisting. Illegal edges are rejected; the graph is authoritative.
func (s *gigService) UpdateRoleStatus(ctx context.Context, ownerID, roleID uuid.UUID, newStatus string) (*dto.RoleResponse, *errors.AppError) {
	gig, role, appErr := s.ownedRole(ctx, ownerID, roleID)
	if appErr != nil {
		return nil, appErr
	}

	next := entity.InvitationStatus(newStatus)
	if !next.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown status %q", newStatus), nil)
	}
	if !role.InvitationStatus.CanTransitionTo(next) {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			fmt.Sprintf("cannot transition from %s to %s", role.InvitationStatus, next), nil)
	}

	if err := s.repo.UpdateRoleStatus(ctx, roleID, next); err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to update status", err)
	}
	role.InvitationStatus = next

	resp := mapper.ToRoleResponse(gig, role, frontendURL())
	return &resp, nil
}

func (s *gigService) GetInviteByToken(ctx context.Context, token string) (*dto.InviteDetailsResponse, *errors.AppError) {
	role, gig, appErr := s.roleByToken(ctx, token)
	if appErr != nil {
		return nil, appErr
	}
	return inviteDetails(gig, role), nil
}

// RespondByToken drives the status machine from a public invite link.
func (s *gigService) RespondByToken(ctx context.Context, token string, action string) (*dto.InviteDetailsResponse, *errors.AppError) {
	role, gig, appErr := s.roleByToken(ctx, token)
	if appErr != nil {
		return nil, appErr
	}

	var next entity.InvitationStatus
	switch action {
	case "accept":
		next = entity.InvitationStatusAccepted
	case "decline":
		next = entity.InvitationStatusDeclined
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "action must be accept or decline", nil)
	}

	if !role.InvitationStatus.CanTransitionTo(next) {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			fmt.Sprintf("cannot transition from %s to %s", role.InvitationStatus, next), nil)
	}
	if err := s.repo.UpdateRoleStatus(ctx, role.ID, next); err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to record response", err)
	}
	role.InvitationStatus = next

	if s.notifService != nil {
		notifType := notifEntity.TypeRoleAccepted
		verb := "accepted"
		if next == entity.InvitationStatusDeclined {
			notifType = notifEntity.TypeRoleDeclined
			verb = "declined"
		}
		err := s.notifService.Create(ctx, &notifDto.CreateNotificationRequest{
			UserID:  gig.OwnerID,
			Title:   "Lineup update",
			Message: fmt.Sprintf("%s %s the %s invitation for %q", role.MusicianName, verb, role.RoleName, gig.Title),
			Type:    notifType,
			Data: map[string]interface{}{
				"gig_id":  gig.ID.String(),
				"role_id": role.ID.String(),
			},
		})
		if err != nil {
			logger.Error("GigService:RespondByToken:Notify:Error", "error", err)
		}
	}

	return inviteDetails(gig, role), nil
}

func (s *gigService) ownedGig(ctx context.Context, ownerID, gigID uuid.UUID) (*entity.Gig, *errors.AppError) {
	gig, err := s.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load gig", err)
	}
	if gig == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "gig not found", nil)
	}
	if gig.OwnerID != ownerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not the gig owner", nil)
	}
	return gig, nil
}

func (s *gigService) ownedRole(ctx context.Context, ownerID, roleID uuid.UUID) (*entity.Gig, *entity.GigRole, *errors.AppError) {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrPersistence, "failed to load role", err)
	}
	if role == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "role not found", nil)
	}
	gig, appErr := s.ownedGig(ctx, ownerID, role.GigID)
	if appErr != nil {
		return nil, nil, appErr
	}
	return gig, role, nil
}

func (s *gigService) roleByToken(ctx context.Context, token string) (*entity.GigRole, *entity.Gig, *errors.AppError) {
	if token == "" {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invite token is required", nil)
	}
	role, err := s.repo.GetRoleByToken(ctx, token)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrPersistence, "failed to load invite", err)
	}
	if role == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "invite not found", nil)
	}
	gig, err := s.repo.GetGigByID(ctx, role.GigID)
	if err != nil || gig == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "gig not found", err)
	}
	return role, gig, nil
}

func inviteDetails(gig *entity.Gig, role *entity.GigRole) *dto.InviteDetailsResponse {
	return &dto.InviteDetailsResponse{
		GigTitle:     gig.Title,
		RoleName:     role.RoleName,
		MusicianName: role.MusicianName,
		StartsAt:     gig.StartsAt.Format(time.RFC3339),
		LocationName: gig.LocationName,
		Status:       string(role.InvitationStatus),
	}
}

// makeSlug appends a short random suffix so duplicate titles stay unique.
func makeSlug(title string) string {
	return fmt.Sprintf("%s-%s", slug.Make(title), utils.GenerateID())
}
