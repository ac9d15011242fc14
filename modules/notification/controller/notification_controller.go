package controller

import (
	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/core/params"
	"gig-planner/core/utils"
	"gig-planner/modules/notification/dto"
	"gig-planner/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	service *service.NotificationService
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *NotificationController) userID(ctx echo.Context) (uuid.UUID, error) {
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

// GetMyNotifications returns the current user's notifications, newest first.
// @Summary List my notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} errors.AppError
// @Router /notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	queryParams := params.FromContext(ctx)
	result, err := c.service.GetMyNotifications(ctx.Request().Context(), userID, queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrPersistence, "failed to load notifications", err))
	}

	return c.SuccessResponse(ctx, result, "Notifications retrieved")
}

// MarkAsRead marks the given notifications as read.
// @Summary Mark notifications as read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MarkAsReadRequest true "Notification ids"
// @Success 200
// @Failure 400 {object} errors.AppError
// @Router /notifications/mark-read [put]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.MarkAsReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), userID, req.IDs); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrPersistence, "failed to mark as read", err))
	}

	return c.SuccessResponse(ctx, nil, "Marked as read")
}

// MarkAllAsRead marks every unread notification as read.
// @Summary Mark all notifications as read
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200
// @Failure 401 {object} errors.AppError
// @Router /notifications/mark-all-read [put]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), userID); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrPersistence, "failed to mark all as read", err))
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read")
}

// CountUnread returns the unread badge count.
// @Summary Count unread notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 401 {object} errors.AppError
// @Router /notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrPersistence, "failed to count unread", err))
	}

	return c.SuccessResponse(ctx, dto.UnreadCountResponse{Count: count}, "Unread count retrieved")
}
