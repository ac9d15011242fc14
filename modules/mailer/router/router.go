package router

import (
	"gig-planner/core/middleware"
	"gig-planner/modules/mailer/controller"

	"github.com/labstack/echo/v4"
)

type MailerRouter struct {
	controller *controller.MailerController
}

func NewMailerRouter(controller *controller.MailerController) *MailerRouter {
	return &MailerRouter{
		controller: controller,
	}
}

func (r *MailerRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	mailRoutes := g.Group("/mail")
	mailRoutes.Use(mw.AuthMiddleware())

	mailRoutes.POST("/invitation", r.controller.SendInvitation)
}
