package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gig-planner/core/config"
	"gig-planner/core/errors"
	"gig-planner/modules/calendar/dto"
	"gig-planner/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Server: config.ServerConfig{FrontendURL: "https://app.example.com"},
		JWT:    config.JWTConfig{Secret: "test-secret"},
	})
}

type mockOAuthService struct {
	handleCallbackFunc func(ctx context.Context, state, code string) (*entity.CalendarConnection, error)
}

func (m *mockOAuthService) GetAuthorizationURL(ctx context.Context, userID uuid.UUID, write bool) (string, error) {
	return "https://accounts.google.com/o/oauth2/auth?state=abc", nil
}

func (m *mockOAuthService) HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
	if m.handleCallbackFunc != nil {
		return m.handleCallbackFunc(ctx, state, code)
	}
	return &entity.CalendarConnection{}, nil
}

func (m *mockOAuthService) GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error) {
	return &dto.ConnectionStatusResponse{Connected: false}, nil
}

func (m *mockOAuthService) Disconnect(ctx context.Context, userID uuid.UUID) (bool, error) {
	return true, nil
}

func (m *mockOAuthService) EnsureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, error) {
	return conn.AccessToken, nil
}

func callbackRequest(t *testing.T, target string, oauth *mockOAuthService) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctrl := NewCalendarController(oauth, nil)
	if err := ctrl.HandleOAuthCallback(c); err != nil {
		t.Fatalf("HandleOAuthCallback() error = %v", err)
	}
	return rec
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) url.Values {
	t.Helper()

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad Location header: %v", err)
	}
	if loc.Host != "app.example.com" {
		t.Errorf("redirect host = %q", loc.Host)
	}
	if loc.Path != "/settings/calendar" {
		t.Errorf("redirect path = %q", loc.Path)
	}
	return loc.Query()
}

func TestHandleOAuthCallbackRedirects(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name      string
		target    string
		oauth     *mockOAuthService
		wantKey   string
		wantValue string
	}{
		{
			name:   "read only connect",
			target: "/api/v1/calendar/oauth/callback?state=s&code=c",
			oauth: &mockOAuthService{
				handleCallbackFunc: func(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
					return &entity.CalendarConnection{WriteAccess: false}, nil
				},
			},
			wantKey:   "success",
			wantValue: "connected",
		},
		{
			name:   "write connect",
			target: "/api/v1/calendar/oauth/callback?state=s&code=c",
			oauth: &mockOAuthService{
				handleCallbackFunc: func(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
					return &entity.CalendarConnection{WriteAccess: true}, nil
				},
			},
			wantKey:   "success",
			wantValue: "connected_write",
		},
		{
			name:      "user denied consent",
			target:    "/api/v1/calendar/oauth/callback?error=access_denied",
			oauth:     &mockOAuthService{},
			wantKey:   "error",
			wantValue: "oauth_access_denied",
		},
		{
			name:      "provider unavailable",
			target:    "/api/v1/calendar/oauth/callback?error=temporarily_unavailable",
			oauth:     &mockOAuthService{},
			wantKey:   "error",
			wantValue: "oauth_temporarily_unavailable",
		},
		{
			name:      "missing code",
			target:    "/api/v1/calendar/oauth/callback?state=s",
			oauth:     &mockOAuthService{},
			wantKey:   "error",
			wantValue: "oauth_invalid_request",
		},
		{
			name:   "stale state",
			target: "/api/v1/calendar/oauth/callback?state=old&code=c",
			oauth: &mockOAuthService{
				handleCallbackFunc: func(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
					return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or already used state token", nil)
				},
			},
			wantKey:   "error",
			wantValue: "oauth_invalid_state",
		},
		{
			name:   "exchange failed",
			target: "/api/v1/calendar/oauth/callback?state=s&code=bad",
			oauth: &mockOAuthService{
				handleCallbackFunc: func(ctx context.Context, state, code string) (*entity.CalendarConnection, error) {
					return nil, errors.NewAppError(errors.ErrExternalAuth, "failed to exchange authorization code", nil)
				},
			},
			wantKey:   "error",
			wantValue: "oauth_exchange_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callbackRequest(t, tt.target, tt.oauth)
			q := redirectQuery(t, rec)
			if got := q.Get(tt.wantKey); got != tt.wantValue {
				t.Errorf("%s = %q, want %q (location %q)", tt.wantKey, got, tt.wantValue, rec.Header().Get("Location"))
			}
		})
	}
}
