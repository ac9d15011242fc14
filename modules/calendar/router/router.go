package router

import (
	"gig-planner/core/middleware"
	"gig-planner/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		controller: controller,
	}
}

func (r *CalendarRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	calendar := g.Group("/calendar")

	// Provider redirects here without a session; the state row carries
	// the user identity.
	calendar.GET("/oauth/callback", r.controller.HandleOAuthCallback)

	connected := calendar.Group("", mw.AuthMiddleware())
	connected.GET("/connect-url", r.controller.GetConnectURL)
	connected.GET("/connection", r.controller.GetConnectionStatus)
	connected.DELETE("/connection", r.controller.Disconnect)

	// Invite dispatch hangs off the gig resource
	gigs := g.Group("/gigs", mw.AuthMiddleware())
	gigs.GET("/:id/invites/pending", r.controller.GetPendingInvites)
	gigs.POST("/:id/invites/send", r.controller.SendInvites)
	gigs.POST("/:id/events/cancel", r.controller.CancelEvents)
}
