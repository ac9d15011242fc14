package repository

import (
	"context"
	"database/sql"
	"time"

	"gig-planner/core/database"
	"gig-planner/core/logger"
	"gig-planner/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	// Connections
	UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	GetConnection(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error)
	UpdateConnectionTokens(ctx context.Context, conn *entity.CalendarConnection) error
	TouchLastSynced(ctx context.Context, id uuid.UUID) error
	DeleteConnection(ctx context.Context, userID uuid.UUID, provider string) (bool, error)

	// OAuth states
	SaveOAuthState(ctx context.Context, state *entity.OAuthState) error
	ConsumeOAuthState(ctx context.Context, state string) (*entity.OAuthState, error)
	DeleteExpiredOAuthStates(ctx context.Context) error

	// Sync log
	CreateSyncLog(ctx context.Context, log *entity.CalendarSyncLog) error
}

type calendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) CalendarRepository {
	return &calendarRepository{db: db}
}

// UpsertConnection inserts or replaces the row keyed by (user_id, provider)
// in one statement so concurrent reconnects cannot produce duplicates.
func (r *calendarRepository) UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	query := `
		INSERT INTO calendar_connections
			(id, user_id, provider, provider_calendar_id, access_token, refresh_token,
			 token_expires_at, sync_enabled, write_access, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id, provider) DO UPDATE SET
			provider_calendar_id = EXCLUDED.provider_calendar_id,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			sync_enabled = EXCLUDED.sync_enabled,
			write_access = EXCLUDED.write_access,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	if conn.ID == uuid.Nil {
		conn.ID = uuid.New()
	}
	err := r.db.QueryRowContext(ctx, query,
		conn.ID, conn.UserID, conn.Provider, conn.ProviderCalendarID,
		conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt,
		conn.SyncEnabled, conn.WriteAccess,
	).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		logger.Error("CalendarRepository:UpsertConnection:Error", "error", err, "user_id", conn.UserID)
		return nil, err
	}
	return conn, nil
}

func (r *calendarRepository) GetConnection(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, provider_calendar_id, access_token, refresh_token,
		       token_expires_at, sync_enabled, write_access, last_synced_at, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1 AND provider = $2
	`
	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, userID, provider)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

func (r *calendarRepository) UpdateConnectionTokens(ctx context.Context, conn *entity.CalendarConnection) error {
	query := `
		UPDATE calendar_connections
		SET access_token = $1, refresh_token = $2, token_expires_at = $3, updated_at = NOW()
		WHERE id = $4
	`
	return r.db.ExecContext(ctx, query,
		conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt, conn.ID,
	)
}

func (r *calendarRepository) TouchLastSynced(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE calendar_connections
		SET last_synced_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	return r.db.ExecContext(ctx, query, id)
}

// DeleteConnection removes the row outright. Credentials are purged rather
// than flagged inactive; sync logs cascade at the schema level.
func (r *calendarRepository) DeleteConnection(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
	query := `
		DELETE FROM calendar_connections
		WHERE user_id = $1 AND provider = $2
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, userID, provider).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *calendarRepository) SaveOAuthState(ctx context.Context, state *entity.OAuthState) error {
	query := `
		INSERT INTO oauth_states (state, user_id, write_access, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	err := r.db.ExecContext(ctx, query, state.State, state.UserID, state.WriteAccess, state.ExpiresAt)
	if err != nil {
		logger.Error("CalendarRepository:SaveOAuthState:Error", "error", err)
	}
	return err
}

// ConsumeOAuthState deletes the state row and returns it, so a state can
// only ever validate one callback. Returns nil,nil when the state is
// unknown or already used.
func (r *calendarRepository) ConsumeOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	query := `
		DELETE FROM oauth_states
		WHERE state = $1
		RETURNING state, user_id, write_access, expires_at, created_at
	`
	var s entity.OAuthState
	err := r.db.QueryRowContext(ctx, query, state).Scan(
		&s.State, &s.UserID, &s.WriteAccess, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *calendarRepository) DeleteExpiredOAuthStates(ctx context.Context) error {
	return r.db.ExecContext(ctx, `DELETE FROM oauth_states WHERE expires_at < NOW()`)
}

func (r *calendarRepository) CreateSyncLog(ctx context.Context, log *entity.CalendarSyncLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO calendar_sync_logs (id, connection_id, operation, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	return r.db.ExecContext(ctx, query, log.ID, log.ConnectionID, log.Operation, log.Detail, log.CreatedAt)
}
