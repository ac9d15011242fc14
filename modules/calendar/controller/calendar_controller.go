package controller

import (
	"net/http"
	"net/url"

	"gig-planner/core/config"
	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/core/utils"
	"gig-planner/modules/calendar/dto"
	"gig-planner/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// settingsPath is where the frontend lands after the OAuth roundtrip.
// Outcome markers are appended as query parameters.
const settingsPath = "/settings/calendar"

type CalendarController struct {
	controller.BaseController
	oauth    service.OAuthService
	dispatch service.DispatchService
}

func NewCalendarController(oauth service.OAuthService, dispatch service.DispatchService) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		oauth:          oauth,
		dispatch:       dispatch,
	}
}

func (c *CalendarController) userID(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get("token_data")
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "token data not found in context", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data format", nil)
	}
	return claims.UserID, nil
}

// GetConnectURL returns the Google consent URL for the current user.
// ?write_access=true additionally requests event write scope.
// @Summary Get calendar consent URL
// @Description Builds the Google OAuth consent URL, optionally with event write scope
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param write_access query boolean false "Request event write scope"
// @Success 200 {object} dto.ConnectURLResponse
// @Failure 401 {object} errors.AppError
// @Router /calendar/connect-url [get]
func (c *CalendarController) GetConnectURL(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	requestWrite := ctx.QueryParam("write_access") == "true"

	authURL, err := c.oauth.GetAuthorizationURL(ctx.Request().Context(), userID, requestWrite)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.ConnectURLResponse{AuthURL: authURL}, "Authorization URL generated")
}

// HandleOAuthCallback finishes the provider roundtrip. The browser is
// always redirected back to the frontend settings page; the outcome rides
// in a query parameter instead of a response body.
// @Summary OAuth callback
// @Description Exchanges the authorization code and redirects to the settings page with an outcome marker
// @Tags Calendar
// @Param code query string false "Authorization code"
// @Param state query string false "One-time state token"
// @Param error query string false "Provider error code"
// @Success 302
// @Router /calendar/oauth/callback [get]
func (c *CalendarController) HandleOAuthCallback(ctx echo.Context) error {
	if providerErr := ctx.QueryParam("error"); providerErr != "" {
		logger.Warn("CalendarController:HandleOAuthCallback:ProviderError", "error", providerErr)
		return c.redirectWithMarker(ctx, "error", "oauth_"+providerErr)
	}

	state := ctx.QueryParam("state")
	code := ctx.QueryParam("code")
	if state == "" || code == "" {
		return c.redirectWithMarker(ctx, "error", "oauth_invalid_request")
	}

	conn, err := c.oauth.HandleCallback(ctx.Request().Context(), state, code)
	if err != nil {
		marker := "oauth_failed"
		switch {
		case errors.Is(err, errors.ErrUnauthorized):
			marker = "oauth_invalid_state"
		case errors.Is(err, errors.ErrExternalAuth):
			marker = "oauth_exchange_failed"
		}
		return c.redirectWithMarker(ctx, "error", marker)
	}

	marker := "connected"
	if conn.WriteAccess {
		marker = "connected_write"
	}
	return c.redirectWithMarker(ctx, "success", marker)
}

func (c *CalendarController) redirectWithMarker(ctx echo.Context, key, value string) error {
	base := "http://localhost:3000"
	if cfg, ok := config.GetSafe(); ok && cfg.Server.FrontendURL != "" {
		base = cfg.Server.FrontendURL
	}
	target := base + settingsPath + "?" + key + "=" + url.QueryEscape(value)
	return ctx.Redirect(http.StatusFound, target)
}

// GetConnectionStatus reports whether the user has a calendar linked.
// @Summary Get calendar connection status
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ConnectionStatusResponse
// @Failure 401 {object} errors.AppError
// @Router /calendar/connection [get]
func (c *CalendarController) GetConnectionStatus(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	status, err := c.oauth.GetConnectionStatus(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, status, "Connection status")
}

// Disconnect removes the user's calendar connection and its tokens.
// @Summary Disconnect calendar
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DisconnectResponse
// @Failure 401 {object} errors.AppError
// @Router /calendar/connection [delete]
func (c *CalendarController) Disconnect(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	deleted, err := c.oauth.Disconnect(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.DisconnectResponse{Disconnected: deleted}, "Calendar disconnected")
}

// GetPendingInvites lists a gig's uninvited roles.
// @Summary List pending invites for a gig
// @Description Partitions not-yet-invited roles into dispatchable and blocked on a missing email
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.PendingInvitesResponse
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id}/invites/pending [get]
func (c *CalendarController) GetPendingInvites(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid gig id")
	}

	resp, err := c.dispatch.GetPendingInvites(ctx.Request().Context(), gigID, userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, resp, "Pending invites")
}

// SendInvites dispatches invites for every pending role of a gig.
// @Summary Send invites for a gig
// @Description Attempts a calendar event per pending role, falling back to email; per-role failures are aggregated
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body dto.SendInvitesRequest false "Per-role email overrides"
// @Success 200 {object} dto.SendInvitesResult
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id}/invites/send [post]
func (c *CalendarController) SendInvites(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid gig id")
	}

	// The body is optional; an empty request dispatches to stored emails.
	var req dto.SendInvitesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid request body")
	}
	overrides := make(map[uuid.UUID]string, len(req.EmailOverrides))
	for roleID, email := range req.EmailOverrides {
		id, err := uuid.Parse(roleID)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "invalid role id in email_overrides")
		}
		overrides[id] = email
	}

	result, err := c.dispatch.SendCalendarInvites(ctx.Request().Context(), gigID, userID, overrides)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Invites dispatched")
}

// CancelEvents removes the provider events for a gig's roles.
// @Summary Cancel calendar events for a gig
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.CancelEventsResponse
// @Failure 404 {object} errors.AppError
// @Failure 412 {object} errors.AppError
// @Router /gigs/{id}/events/cancel [post]
func (c *CalendarController) CancelEvents(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid gig id")
	}

	cancelled, err := c.dispatch.CancelEventsForGig(ctx.Request().Context(), gigID, userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.CancelEventsResponse{Cancelled: cancelled}, "Calendar events cancelled")
}
