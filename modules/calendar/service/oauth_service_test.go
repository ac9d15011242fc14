package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gig-planner/core/config"
	"gig-planner/core/constants"
	coreentity "gig-planner/core/entity"
	"gig-planner/core/errors"
	"gig-planner/modules/calendar/entity"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Server: config.ServerConfig{
			FrontendURL: "https://app.example.com",
		},
		GoogleAPI: config.GoogleAPIConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURI:  "https://api.example.com/api/v1/calendar/oauth/callback",
		},
		JWT: config.JWTConfig{Secret: "test-secret"},
	})
}

type mockCalendarRepo struct {
	upsertConnectionFunc    func(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	getConnectionFunc       func(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error)
	updateConnectionFunc    func(ctx context.Context, conn *entity.CalendarConnection) error
	touchLastSyncedFunc     func(ctx context.Context, id uuid.UUID) error
	deleteConnectionFunc    func(ctx context.Context, userID uuid.UUID, provider string) (bool, error)
	saveOAuthStateFunc      func(ctx context.Context, state *entity.OAuthState) error
	consumeOAuthStateFunc   func(ctx context.Context, state string) (*entity.OAuthState, error)
	deleteExpiredStatesFunc func(ctx context.Context) error
	createSyncLogFunc       func(ctx context.Context, log *entity.CalendarSyncLog) error
}

func (m *mockCalendarRepo) UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	if m.upsertConnectionFunc != nil {
		return m.upsertConnectionFunc(ctx, conn)
	}
	conn.ID = uuid.New()
	return conn, nil
}

func (m *mockCalendarRepo) GetConnection(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
	if m.getConnectionFunc != nil {
		return m.getConnectionFunc(ctx, userID, provider)
	}
	return nil, nil
}

func (m *mockCalendarRepo) UpdateConnectionTokens(ctx context.Context, conn *entity.CalendarConnection) error {
	if m.updateConnectionFunc != nil {
		return m.updateConnectionFunc(ctx, conn)
	}
	return nil
}

func (m *mockCalendarRepo) TouchLastSynced(ctx context.Context, id uuid.UUID) error {
	if m.touchLastSyncedFunc != nil {
		return m.touchLastSyncedFunc(ctx, id)
	}
	return nil
}

func (m *mockCalendarRepo) DeleteConnection(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
	if m.deleteConnectionFunc != nil {
		return m.deleteConnectionFunc(ctx, userID, provider)
	}
	return false, nil
}

func (m *mockCalendarRepo) SaveOAuthState(ctx context.Context, state *entity.OAuthState) error {
	if m.saveOAuthStateFunc != nil {
		return m.saveOAuthStateFunc(ctx, state)
	}
	return nil
}

func (m *mockCalendarRepo) ConsumeOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	if m.consumeOAuthStateFunc != nil {
		return m.consumeOAuthStateFunc(ctx, state)
	}
	return nil, nil
}

func (m *mockCalendarRepo) DeleteExpiredOAuthStates(ctx context.Context) error {
	if m.deleteExpiredStatesFunc != nil {
		return m.deleteExpiredStatesFunc(ctx)
	}
	return nil
}

func (m *mockCalendarRepo) CreateSyncLog(ctx context.Context, log *entity.CalendarSyncLog) error {
	if m.createSyncLogFunc != nil {
		return m.createSyncLogFunc(ctx, log)
	}
	return nil
}

func TestGetAuthorizationURL(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name           string
		requestWrite   bool
		wantEventScope bool
	}{
		{"read only", false, false},
		{"with write access", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *entity.OAuthState
			repo := &mockCalendarRepo{
				saveOAuthStateFunc: func(ctx context.Context, state *entity.OAuthState) error {
					saved = state
					return nil
				},
			}

			userID := uuid.New()
			svc := NewOAuthService(repo)
			authURL, err := svc.GetAuthorizationURL(context.Background(), userID, tt.requestWrite)
			if err != nil {
				t.Fatalf("GetAuthorizationURL() error = %v", err)
			}

			parsed, err := url.Parse(authURL)
			if err != nil {
				t.Fatalf("returned URL does not parse: %v", err)
			}
			q := parsed.Query()

			if q.Get("client_id") != "test-client-id" {
				t.Errorf("client_id = %q", q.Get("client_id"))
			}
			if q.Get("access_type") != "offline" {
				t.Errorf("access_type = %q", q.Get("access_type"))
			}
			if saved == nil {
				t.Fatal("state was not persisted")
			}
			if q.Get("state") != saved.State {
				t.Errorf("URL state %q != stored state %q", q.Get("state"), saved.State)
			}
			if saved.UserID != userID {
				t.Errorf("stored state user = %v, want %v", saved.UserID, userID)
			}
			if saved.WriteAccess != tt.requestWrite {
				t.Errorf("stored state write_access = %v", saved.WriteAccess)
			}
			if time.Until(saved.ExpiresAt) > constants.OAuthStateTTL {
				t.Errorf("state expiry too far out: %v", saved.ExpiresAt)
			}

			scope := q.Get("scope")
			if !strings.Contains(scope, constants.CalendarReadOnlyScope) {
				t.Errorf("scope missing readonly: %q", scope)
			}
			if strings.Contains(scope, constants.CalendarEventsScope) != tt.wantEventScope {
				t.Errorf("scope = %q, want events scope %v", scope, tt.wantEventScope)
			}
		})
	}
}

func fakeTokenServer(t *testing.T, grantedScope string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"access_token": "fresh-access-token",
			"token_type": "Bearer",
			"refresh_token": "fresh-refresh-token",
			"expires_in": 3600,
			"scope": %q
		}`, grantedScope)
	}))
}

func TestHandleCallbackScopeDetection(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name         string
		grantedScope string
		wantWrite    bool
	}{
		{
			"read only granted",
			constants.CalendarReadOnlyScope,
			false,
		},
		{
			"write granted",
			constants.CalendarReadOnlyScope + " " + constants.CalendarEventsScope,
			true,
		},
		{
			"write requested but unticked on consent screen",
			constants.CalendarReadOnlyScope + " openid email",
			false,
		},
		{
			"no scopes reported",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := fakeTokenServer(t, tt.grantedScope)
			defer ts.Close()

			userID := uuid.New()
			var upserted *entity.CalendarConnection
			repo := &mockCalendarRepo{
				consumeOAuthStateFunc: func(ctx context.Context, state string) (*entity.OAuthState, error) {
					if state != "valid-state" {
						return nil, nil
					}
					return &entity.OAuthState{
						State:       state,
						UserID:      userID,
						WriteAccess: true,
						ExpiresAt:   time.Now().Add(5 * time.Minute),
					}, nil
				},
				upsertConnectionFunc: func(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
					conn.ID = uuid.New()
					upserted = conn
					return conn, nil
				},
			}

			svc := NewOAuthServiceWithEndpoint(repo, oauth2.Endpoint{
				AuthURL:  ts.URL + "/auth",
				TokenURL: ts.URL + "/token",
			})

			conn, err := svc.HandleCallback(context.Background(), "valid-state", "auth-code")
			if err != nil {
				t.Fatalf("HandleCallback() error = %v", err)
			}
			if conn.WriteAccess != tt.wantWrite {
				t.Errorf("WriteAccess = %v, want %v", conn.WriteAccess, tt.wantWrite)
			}
			if upserted == nil {
				t.Fatal("connection was not upserted")
			}
			if upserted.AccessToken != "fresh-access-token" {
				t.Errorf("access token = %q", upserted.AccessToken)
			}
			if upserted.RefreshToken != "fresh-refresh-token" {
				t.Errorf("refresh token = %q", upserted.RefreshToken)
			}
			if upserted.UserID != userID {
				t.Errorf("user id = %v, want %v", upserted.UserID, userID)
			}
			if !upserted.SyncEnabled {
				t.Error("SyncEnabled = false after connect")
			}
		})
	}
}

func TestHandleCallbackRejectsBadStates(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name  string
		state *entity.OAuthState
	}{
		{"unknown state", nil},
		{
			"expired state",
			&entity.OAuthState{
				State:     "stale",
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCalendarRepo{
				consumeOAuthStateFunc: func(ctx context.Context, state string) (*entity.OAuthState, error) {
					return tt.state, nil
				},
			}

			svc := NewOAuthService(repo)
			_, err := svc.HandleCallback(context.Background(), "whatever", "code")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrUnauthorized) {
				t.Errorf("error code = %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestEnsureValidTokenSkipsFreshToken(t *testing.T) {
	setTestConfig(t)

	refreshed := false
	repo := &mockCalendarRepo{
		updateConnectionFunc: func(ctx context.Context, conn *entity.CalendarConnection) error {
			refreshed = true
			return nil
		},
	}

	svc := NewOAuthService(repo)
	conn := &entity.CalendarConnection{
		AccessToken:    "still-good",
		TokenExpiresAt: time.Now().Add(time.Hour),
	}

	token, err := svc.EnsureValidToken(context.Background(), conn)
	if err != nil {
		t.Fatalf("EnsureValidToken() error = %v", err)
	}
	if token != "still-good" {
		t.Errorf("token = %q, want the stored one", token)
	}
	if refreshed {
		t.Error("token was refreshed while still valid")
	}
}

func TestEnsureValidTokenRefreshesExpired(t *testing.T) {
	setTestConfig(t)

	ts := fakeTokenServer(t, constants.CalendarReadOnlyScope)
	defer ts.Close()

	var persisted *entity.CalendarConnection
	repo := &mockCalendarRepo{
		updateConnectionFunc: func(ctx context.Context, conn *entity.CalendarConnection) error {
			persisted = conn
			return nil
		},
	}

	svc := NewOAuthServiceWithEndpoint(repo, oauth2.Endpoint{
		AuthURL:  ts.URL + "/auth",
		TokenURL: ts.URL + "/token",
	})
	conn := &entity.CalendarConnection{
		BaseEntity:     coreentity.BaseEntity{ID: uuid.New()},
		UserID:         uuid.New(),
		AccessToken:    "expired-token",
		RefreshToken:   "old-refresh",
		TokenExpiresAt: time.Now().Add(-time.Minute),
	}

	token, err := svc.EnsureValidToken(context.Background(), conn)
	if err != nil {
		t.Fatalf("EnsureValidToken() error = %v", err)
	}
	if token != "fresh-access-token" {
		t.Errorf("token = %q", token)
	}
	if persisted == nil {
		t.Fatal("refreshed tokens were not persisted")
	}
	if persisted.AccessToken != "fresh-access-token" {
		t.Errorf("persisted access token = %q", persisted.AccessToken)
	}
}

func TestDisconnect(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name    string
		existed bool
	}{
		{"connection existed", true},
		{"nothing to disconnect", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCalendarRepo{
				deleteConnectionFunc: func(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
					return tt.existed, nil
				},
			}

			svc := NewOAuthService(repo)
			deleted, err := svc.Disconnect(context.Background(), uuid.New())
			if err != nil {
				t.Fatalf("Disconnect() error = %v", err)
			}
			if deleted != tt.existed {
				t.Errorf("deleted = %v, want %v", deleted, tt.existed)
			}
		})
	}
}
