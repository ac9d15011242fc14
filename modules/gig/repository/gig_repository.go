package repository

import (
	"context"
	"database/sql"

	"gig-planner/core/database"
	"gig-planner/core/logger"
	"gig-planner/core/params"
	"gig-planner/modules/gig/entity"

	"github.com/google/uuid"
)

type GigRepository interface {
	// Gigs
	CreateGig(ctx context.Context, gig *entity.Gig) (*entity.Gig, error)
	GetGigByID(ctx context.Context, id uuid.UUID) (*entity.Gig, error)
	ListGigsByOwner(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) ([]entity.Gig, int, error)
	UpdateGig(ctx context.Context, gig *entity.Gig) error
	UpdateGigStatus(ctx context.Context, id uuid.UUID, status entity.GigStatus) error
	SetGigSetlist(ctx context.Context, id uuid.UUID, url string) error
	DeleteGig(ctx context.Context, id uuid.UUID) error

	// Roles
	CreateRole(ctx context.Context, role *entity.GigRole) (*entity.GigRole, error)
	GetRoleByID(ctx context.Context, id uuid.UUID) (*entity.GigRole, error)
	GetRoleByToken(ctx context.Context, token string) (*entity.GigRole, error)
	GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]entity.GigRole, error)
	UpdateRoleStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error
	UpdateRoleEmail(ctx context.Context, id uuid.UUID, email string) error
	SetRoleCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type gigRepository struct {
	db database.IDatabase
}

func NewGigRepository(db database.IDatabase) GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) CreateGig(ctx context.Context, gig *entity.Gig) (*entity.Gig, error) {
	query := `
		INSERT INTO gigs (owner_id, title, slug, status, starts_at, ends_at, location_name, host_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		gig.OwnerID, gig.Title, gig.Slug, gig.Status, gig.StartsAt,
		gig.EndsAt, gig.LocationName, gig.HostName, gig.Notes,
	).Scan(&gig.ID, &gig.CreatedAt, &gig.UpdatedAt)
	if err != nil {
		logger.Error("GigRepository:CreateGig:Error", "error", err)
		return nil, err
	}
	return gig, nil
}

func (r *gigRepository) GetGigByID(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	var gig entity.Gig
	query := `SELECT * FROM gigs WHERE id = $1`
	err := r.db.GetContext(ctx, &gig, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GigRepository:GetGigByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &gig, nil
}

func (r *gigRepository) ListGigsByOwner(ctx context.Context, ownerID uuid.UUID, p params.QueryParams) ([]entity.Gig, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM gigs WHERE owner_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, ownerID); err != nil {
		logger.Error("GigRepository:ListGigsByOwner:Count:Error", "error", err)
		return nil, 0, err
	}

	var gigs []entity.Gig
	query := `
		SELECT * FROM gigs
		WHERE owner_id = $1
		ORDER BY starts_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &gigs, query, ownerID, p.PageSize, p.Offset())
	if err != nil {
		logger.Error("GigRepository:ListGigsByOwner:Error", "error", err)
		return nil, 0, err
	}
	return gigs, total, nil
}

func (r *gigRepository) UpdateGig(ctx context.Context, gig *entity.Gig) error {
	query := `
		UPDATE gigs
		SET title = $1, starts_at = $2, ends_at = $3, location_name = $4,
		    host_name = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`
	err := r.db.ExecContext(ctx, query,
		gig.Title, gig.StartsAt, gig.EndsAt, gig.LocationName,
		gig.HostName, gig.Notes, gig.ID,
	)
	if err != nil {
		logger.Error("GigRepository:UpdateGig:Error", "error", err, "id", gig.ID)
	}
	return err
}

func (r *gigRepository) UpdateGigStatus(ctx context.Context, id uuid.UUID, status entity.GigStatus) error {
	query := `UPDATE gigs SET status = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.Error("GigRepository:UpdateGigStatus:Error", "error", err, "id", id)
	}
	return err
}

func (r *gigRepository) SetGigSetlist(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE gigs SET setlist_url = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, url, id)
	if err != nil {
		logger.Error("GigRepository:SetGigSetlist:Error", "error", err, "id", id)
	}
	return err
}

// DeleteGig removes the gig; gig_roles cascade via FK.
func (r *gigRepository) DeleteGig(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gigs WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("GigRepository:DeleteGig:Error", "error", err, "id", id)
	}
	return err
}

func (r *gigRepository) CreateRole(ctx context.Context, role *entity.GigRole) (*entity.GigRole, error) {
	query := `
		INSERT INTO gig_roles (gig_id, musician_name, role_name, contact_email, invitation_status, calendar_event_id, invite_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		role.GigID, role.MusicianName, role.RoleName, role.ContactEmail,
		role.InvitationStatus, role.CalendarEventID, role.InviteToken,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		logger.Error("GigRepository:CreateRole:Error", "error", err)
		return nil, err
	}
	return role, nil
}

func (r *gigRepository) GetRoleByID(ctx context.Context, id uuid.UUID) (*entity.GigRole, error) {
	var role entity.GigRole
	query := `SELECT * FROM gig_roles WHERE id = $1`
	err := r.db.GetContext(ctx, &role, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GigRepository:GetRoleByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &role, nil
}

func (r *gigRepository) GetRoleByToken(ctx context.Context, token string) (*entity.GigRole, error) {
	var role entity.GigRole
	query := `SELECT * FROM gig_roles WHERE invite_token = $1`
	err := r.db.GetContext(ctx, &role, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GigRepository:GetRoleByToken:Error", "error", err)
		return nil, err
	}
	return &role, nil
}

func (r *gigRepository) GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]entity.GigRole, error) {
	var roles []entity.GigRole
	query := `SELECT * FROM gig_roles WHERE gig_id = $1 ORDER BY id`
	err := r.db.SelectContext(ctx, &roles, query, gigID)
	if err != nil {
		logger.Error("GigRepository:GetRolesByGigID:Error", "error", err, "gig_id", gigID)
		return nil, err
	}
	return roles, nil
}

func (r *gigRepository) UpdateRoleStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	query := `UPDATE gig_roles SET invitation_status = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.Error("GigRepository:UpdateRoleStatus:Error", "error", err, "id", id)
	}
	return err
}

func (r *gigRepository) UpdateRoleEmail(ctx context.Context, id uuid.UUID, email string) error {
	query := `UPDATE gig_roles SET contact_email = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, email, id)
	if err != nil {
		logger.Error("GigRepository:UpdateRoleEmail:Error", "error", err, "id", id)
	}
	return err
}

// SetRoleCalendarEvent stores a provider event id, or clears it when nil.
func (r *gigRepository) SetRoleCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error {
	query := `UPDATE gig_roles SET calendar_event_id = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, eventID, id)
	if err != nil {
		logger.Error("GigRepository:SetRoleCalendarEvent:Error", "error", err, "id", id)
	}
	return err
}

func (r *gigRepository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gig_roles WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("GigRepository:DeleteRole:Error", "error", err, "id", id)
	}
	return err
}
