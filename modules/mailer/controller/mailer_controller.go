package controller

import (
	"fmt"
	"strings"
	"time"

	"gig-planner/core/controller"
	"gig-planner/core/errors"
	"gig-planner/modules/mailer/dto"
	"gig-planner/modules/mailer/service"

	"github.com/labstack/echo/v4"
)

type MailerController struct {
	controller.BaseController
	service *service.MailerService
}

func NewMailerController(service *service.MailerService) *MailerController {
	return &MailerController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// SendInvitation sends one invitation email directly.
func (c *MailerController) SendInvitation(ctx echo.Context) error {
	var req dto.SendInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return c.BadRequest(errors.ErrInvalidInput,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	gigDate, err := time.Parse("2006-01-02", req.GigDate)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "gigDate must be YYYY-MM-DD")
	}

	data := service.InvitationEmailData{
		InviteLink:   req.InviteLink,
		GigTitle:     req.GigTitle,
		ProjectName:  req.ProjectName,
		HostName:     req.HostName,
		RoleName:     req.RoleName,
		GigDate:      gigDate,
		GigTime:      req.GigTime,
		LocationName: req.LocationName,
	}

	if err := c.service.SendInvitation(ctx.Request().Context(), req.To, data); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInternalServer, "failed to send invitation email", err))
	}

	return c.SuccessResponse(ctx, dto.SendInvitationResponse{Sent: true}, "Invitation email sent")
}
