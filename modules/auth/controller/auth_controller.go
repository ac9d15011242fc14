package controller

import (
	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/core/utils"
	"gig-planner/modules/auth/dto"
	"gig-planner/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service *service.AuthService
}

func NewAuthController(service *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Register handles POST /auth/register
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account fields"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, err := c.service.Register(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, resp, "Account created")
}

// Login handles POST /auth/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, err := c.service.Login(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, resp, "Logged in")
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200
// @Failure 401 {object} errors.AppError
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	rawToken, _ := ctx.Get("raw_token").(string)
	claims, _ := ctx.Get("token_data").(*utils.TokenClaims)
	if rawToken == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "No token provided")
	}

	if err := c.service.Logout(ctx.Request().Context(), rawToken, claims); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Logged out")
}

// RefreshToken handles POST /auth/refresh
// @Summary Refresh the token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return c.BadRequest(errors.ErrInvalidInput, "refresh_token is required")
	}

	pair, err := c.service.RefreshToken(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, pair, "Tokens refreshed")
}

// Me handles GET /auth/me
// @Summary Get the current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/me [get]
func (c *AuthController) Me(ctx echo.Context) error {
	claims, ok := ctx.Get("token_data").(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	user, err := c.service.Me(ctx.Request().Context(), claims.UserID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, user, "Profile retrieved")
}
