package controller

import (
	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/core/utils"
	"gig-planner/modules/upload/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UploadController struct {
	controller.BaseController
	service *service.UploadService
}

func NewUploadController(service *service.UploadService) *UploadController {
	return &UploadController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *UploadController) userID(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := ctx.Get("token_data").(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data format", nil)
	}
	return claims.UserID, nil
}

// UploadAvatar accepts a multipart "file" field with a profile image.
func (c *UploadController) UploadAvatar(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInternalServer, "failed to read upload", err))
	}
	defer file.Close()

	url, err := c.service.UploadAvatar(
		ctx.Request().Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, map[string]string{"url": url}, "Avatar uploaded")
}

// UploadSetlist accepts a multipart "file" field with a PDF setlist for a gig.
func (c *UploadController) UploadSetlist(ctx echo.Context) error {
	userID, err := c.userID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	gigID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid gig id")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInternalServer, "failed to read upload", err))
	}
	defer file.Close()

	url, err := c.service.UploadSetlist(
		ctx.Request().Context(),
		userID,
		gigID,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, map[string]string{"url": url}, "Setlist uploaded")
}
