package controller

import (
	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/core/params"
	"gig-planner/core/utils"
	"gig-planner/modules/gig/dto"
	"gig-planner/modules/gig/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GigController struct {
	controller.BaseController
	service service.GigService
}

func NewGigController(service service.GigService) *GigController {
	return &GigController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *GigController) userID(ctx echo.Context) (uuid.UUID, error) {
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

// CreateGig handles POST /gigs
// @Summary Create a gig
// @Tags Gig
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGigRequest true "Gig fields"
// @Success 200 {object} dto.GigResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /gigs [post]
func (c *GigController) CreateGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.CreateGigRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.CreateGig(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gig created")
}

// GetGig handles GET /gigs/:id
// @Summary Get a gig
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.GigResponse
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id} [get]
func (c *GigController) GetGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	resp, appErr := c.service.GetGig(ctx.Request().Context(), userID, gigID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gig retrieved")
}

// ListGigs handles GET /gigs
// @Summary List my gigs
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedGigResponse
// @Failure 401 {object} errors.AppError
// @Router /gigs [get]
func (c *GigController) ListGigs(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	resp, appErr := c.service.ListGigs(ctx.Request().Context(), userID, params.FromContext(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gigs retrieved")
}

// UpdateGig handles PATCH /gigs/:id
// @Summary Update a gig
// @Tags Gig
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body dto.UpdateGigRequest true "Fields to update"
// @Success 200 {object} dto.GigResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id} [patch]
func (c *GigController) UpdateGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	var req dto.UpdateGigRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.UpdateGig(ctx.Request().Context(), userID, gigID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gig updated")
}

// ConfirmGig handles POST /gigs/:id/confirm
// @Summary Confirm a gig
// @Description Moves a draft gig to confirmed and schedules its reminder
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.GigResponse
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id}/confirm [post]
func (c *GigController) ConfirmGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	resp, appErr := c.service.ConfirmGig(ctx.Request().Context(), userID, gigID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gig confirmed")
}

// DeleteGig handles DELETE /gigs/:id
// @Summary Delete a gig
// @Description Cancels outstanding calendar events before removing the gig
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id} [delete]
func (c *GigController) DeleteGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	if appErr := c.service.DeleteGig(ctx.Request().Context(), userID, gigID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Gig deleted")
}

// DuplicateGig handles POST /gigs/:id/duplicate
// @Summary Duplicate a gig
// @Description Copies the gig and its lineup with fresh role ids and invite tokens
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.GigResponse
// @Failure 404 {object} errors.AppError
// @Router /gigs/{id}/duplicate [post]
func (c *GigController) DuplicateGig(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	resp, appErr := c.service.DuplicateGig(ctx.Request().Context(), userID, gigID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Gig duplicated")
}

// AddRole handles POST /gigs/:id/roles
// @Summary Add a lineup role
// @Tags Gig
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body dto.AddRoleRequest true "Role fields"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} errors.AppError
// @Router /gigs/{id}/roles [post]
func (c *GigController) AddRole(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid gig ID")
	}

	var req dto.AddRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.AddRole(ctx.Request().Context(), userID, gigID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Role added")
}

// RemoveRole handles DELETE /gigs/roles/:roleId
// @Summary Remove a lineup role
// @Tags Gig
// @Security BearerAuth
// @Produce json
// @Param roleId path string true "Role ID"
// @Success 200
// @Failure 404 {object} errors.AppError
// @Router /gigs/roles/{roleId} [delete]
func (c *GigController) RemoveRole(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	roleID, err := uuid.Parse(ctx.Param("roleId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid role ID")
	}

	if appErr := c.service.RemoveRole(ctx.Request().Context(), userID, roleID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Role removed")
}

// UpdateRoleEmail handles PATCH /gigs/roles/:roleId/email
// @Summary Update a role's contact email
// @Tags Gig
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param roleId path string true "Role ID"
// @Param request body dto.UpdateRoleEmailRequest true "Contact email"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} errors.AppError
// @Router /gigs/roles/{roleId}/email [patch]
func (c *GigController) UpdateRoleEmail(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	roleID, err := uuid.Parse(ctx.Param("roleId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid role ID")
	}

	var req dto.UpdateRoleEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.UpdateRoleEmail(ctx.Request().Context(), userID, roleID, req.ContactEmail)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Contact email updated")
}

// UpdateRoleStatus handles PATCH /gigs/roles/:roleId/status
// @Summary Update a role's invitation status
// @Description Rejects transitions not present in the invitation status graph
// @Tags Gig
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param roleId path string true "Role ID"
// @Param request body dto.UpdateRoleStatusRequest true "New status"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /gigs/roles/{roleId}/status [patch]
func (c *GigController) UpdateRoleStatus(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	roleID, err := uuid.Parse(ctx.Param("roleId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid role ID")
	}

	var req dto.UpdateRoleStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.UpdateRoleStatus(ctx.Request().Context(), userID, roleID, req.Status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Status updated")
}

// GetInvite is public: a musician follows the invite link without a session.
// @Summary Get invite details by token
// @Tags Invite
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} dto.InviteDetailsResponse
// @Failure 404 {object} errors.AppError
// @Router /invites/{token} [get]
func (c *GigController) GetInvite(ctx echo.Context) error {
	resp, appErr := c.service.GetInviteByToken(ctx.Request().Context(), ctx.Param("token"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Invite retrieved")
}

// RespondToInvite handles POST /invites/:token/respond
// @Summary Accept or decline an invite
// @Tags Invite
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param request body dto.InviteRespondRequest true "accept or decline"
// @Success 200 {object} dto.InviteDetailsResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /invites/{token}/respond [post]
func (c *GigController) RespondToInvite(ctx echo.Context) error {
	var req dto.InviteRespondRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.RespondByToken(ctx.Request().Context(), ctx.Param("token"), req.Action)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Response recorded")
}
