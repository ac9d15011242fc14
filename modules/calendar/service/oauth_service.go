package service

import (
	"context"
	"strings"
	"time"

	"gig-planner/core/config"
	"gig-planner/core/constants"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/core/utils"
	"gig-planner/modules/calendar/dto"
	"gig-planner/modules/calendar/entity"
	"gig-planner/modules/calendar/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// tokenSkew refreshes tokens slightly before they expire so an in-flight
// provider call never races the expiry.
const tokenSkew = 5 * time.Minute

type OAuthService interface {
	GetAuthorizationURL(ctx context.Context, userID uuid.UUID, requestWriteAccess bool) (string, error)
	HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, error)
	GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error)
	Disconnect(ctx context.Context, userID uuid.UUID) (bool, error)
	EnsureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, error)
}

type oauthService struct {
	repo     repository.CalendarRepository
	endpoint oauth2.Endpoint
}

func NewOAuthService(repo repository.CalendarRepository) OAuthService {
	return &oauthService{repo: repo, endpoint: google.Endpoint}
}

// NewOAuthServiceWithEndpoint points the service at a non-Google endpoint.
// Tests use it with an httptest token server.
func NewOAuthServiceWithEndpoint(repo repository.CalendarRepository, endpoint oauth2.Endpoint) OAuthService {
	return &oauthService{repo: repo, endpoint: endpoint}
}

func (s *oauthService) oauthConfig(writeAccess bool) (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RedirectURI == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	scopes := []string{constants.CalendarReadOnlyScope}
	if writeAccess {
		scopes = append(scopes, constants.CalendarEventsScope)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       scopes,
		Endpoint:     s.endpoint,
	}, nil
}

// GetAuthorizationURL stores a single-use state row and returns the
// provider consent URL. The state row remembers the requesting user since
// the callback arrives without a session.
func (s *oauthService) GetAuthorizationURL(ctx context.Context, userID uuid.UUID, requestWriteAccess bool) (string, error) {
	oauthConfig, appErr := s.oauthConfig(requestWriteAccess)
	if appErr != nil {
		return "", appErr
	}

	// Opportunistic sweep; expired rows have no other cleanup path.
	if err := s.repo.DeleteExpiredOAuthStates(ctx); err != nil {
		logger.Warn("OAuthService:GetAuthorizationURL:Sweep:Error", "error", err)
	}

	state := utils.GenerateRandomString(32)
	row := &entity.OAuthState{
		State:       state,
		UserID:      userID,
		WriteAccess: requestWriteAccess,
		ExpiresAt:   time.Now().Add(constants.OAuthStateTTL),
	}
	if err := s.repo.SaveOAuthState(ctx, row); err != nil {
		logger.Error("OAuthService:GetAuthorizationURL:SaveOAuthState:Error", "error", err)
		return "", errors.NewAppError(errors.ErrPersistence, "failed to store state token", err)
	}

	logger.Info("OAuthService:GetAuthorizationURL:StateStored",
		"user_id", userID, "write_access", requestWriteAccess, "expires_at", row.ExpiresAt)

	return oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// HandleCallback validates and consumes the state, exchanges the code and
// upserts the connection. Write access on the stored connection reflects
// what Google actually granted, not what was requested.
func (s *oauthService) HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
	st, err := s.repo.ConsumeOAuthState(ctx, state)
	if err != nil {
		logger.Error("OAuthService:HandleCallback:ConsumeOAuthState:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to validate state token", err)
	}
	if st == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or already used state token", nil)
	}
	if st.Expired() {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "expired state token", nil)
	}

	oauthConfig, appErr := s.oauthConfig(st.WriteAccess)
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("OAuthService:HandleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrExternalAuth, "failed to exchange authorization code", err)
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		// Google omits the refresh token on re-consent; keep the one we have.
		if existing, _ := s.repo.GetConnection(ctx, st.UserID, constants.ProviderGoogle); existing != nil {
			refreshToken = existing.RefreshToken
		}
	}

	conn := &entity.CalendarConnection{
		UserID:             st.UserID,
		Provider:           constants.ProviderGoogle,
		ProviderCalendarID: "primary",
		AccessToken:        token.AccessToken,
		RefreshToken:       refreshToken,
		TokenExpiresAt:     token.Expiry,
		SyncEnabled:        true,
		WriteAccess:        grantedWriteAccess(token),
	}

	saved, err := s.repo.UpsertConnection(ctx, conn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to save calendar connection", err)
	}

	logger.Info("OAuthService:HandleCallback:Connected",
		"user_id", saved.UserID, "write_access", saved.WriteAccess)
	return saved, nil
}

// grantedWriteAccess inspects the scope set Google returned with the
// token. Users can untick scopes on the consent screen, so the requested
// set is not trustworthy.
func grantedWriteAccess(token *oauth2.Token) bool {
	raw, _ := token.Extra("scope").(string)
	for _, scope := range strings.Fields(raw) {
		if scope == constants.CalendarEventsScope {
			return true
		}
	}
	return false
}

func (s *oauthService) GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error) {
	conn, err := s.repo.GetConnection(ctx, userID, constants.ProviderGoogle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load connection", err)
	}
	if conn == nil {
		return &dto.ConnectionStatusResponse{Connected: false}, nil
	}

	resp := &dto.ConnectionResponse{
		ID:                 conn.ID.String(),
		Provider:           conn.Provider,
		ProviderCalendarID: conn.ProviderCalendarID,
		SyncEnabled:        conn.SyncEnabled,
		WriteAccess:        conn.WriteAccess,
		ConnectedAt:        conn.CreatedAt.Format(time.RFC3339),
	}
	if conn.LastSyncedAt != nil {
		v := conn.LastSyncedAt.Format(time.RFC3339)
		resp.LastSyncedAt = &v
	}
	return &dto.ConnectionStatusResponse{Connected: true, Connection: resp}, nil
}

// Disconnect deletes the connection row and reports whether one existed.
// Tokens are gone from storage once this returns; in-flight dispatches
// re-read the row per call and fall back to email when it is missing.
func (s *oauthService) Disconnect(ctx context.Context, userID uuid.UUID) (bool, error) {
	deleted, err := s.repo.DeleteConnection(ctx, userID, constants.ProviderGoogle)
	if err != nil {
		return false, errors.NewAppError(errors.ErrPersistence, "failed to disconnect calendar", err)
	}
	if deleted {
		logger.Info("OAuthService:Disconnect:Removed", "user_id", userID)
	}
	return deleted, nil
}

// EnsureValidToken returns a usable access token, refreshing and
// persisting it first when the stored one is within tokenSkew of expiry.
func (s *oauthService) EnsureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, error) {
	if time.Now().Before(conn.TokenExpiresAt.Add(-tokenSkew)) {
		return conn.AccessToken, nil
	}

	logger.Info("OAuthService:EnsureValidToken:Refreshing", "user_id", conn.UserID)

	oauthConfig, appErr := s.oauthConfig(conn.WriteAccess)
	if appErr != nil {
		return "", appErr
	}

	src := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: conn.RefreshToken})
	token, err := src.Token()
	if err != nil {
		logger.Error("OAuthService:EnsureValidToken:Refresh:Error:", err)
		return "", errors.NewAppError(errors.ErrExternalAuth, "failed to refresh access token", err)
	}

	conn.AccessToken = token.AccessToken
	conn.TokenExpiresAt = token.Expiry
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}

	if err := s.repo.UpdateConnectionTokens(ctx, conn); err != nil {
		// The refreshed token still works for this call.
		logger.Error("OAuthService:EnsureValidToken:Persist:Error", "error", err)
	}
	_ = s.repo.CreateSyncLog(ctx, &entity.CalendarSyncLog{
		ConnectionID: conn.ID,
		Operation:    entity.SyncOpTokenRefresh,
	})

	return token.AccessToken, nil
}
