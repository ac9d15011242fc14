package router

import (
	"gig-planner/core/middleware"
	"gig-planner/modules/gig/controller"

	"github.com/labstack/echo/v4"
)

type GigRouter struct {
	controller *controller.GigController
}

func NewGigRouter(controller *controller.GigController) *GigRouter {
	return &GigRouter{
		controller: controller,
	}
}

func (r *GigRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	gigs := g.Group("/gigs")
	gigs.Use(mw.AuthMiddleware())

	gigs.POST("", r.controller.CreateGig)
	gigs.GET("", r.controller.ListGigs)
	gigs.GET("/:id", r.controller.GetGig)
	gigs.PATCH("/:id", r.controller.UpdateGig)
	gigs.POST("/:id/confirm", r.controller.ConfirmGig)
	gigs.POST("/:id/duplicate", r.controller.DuplicateGig)
	gigs.DELETE("/:id", r.controller.DeleteGig)

	gigs.POST("/:id/roles", r.controller.AddRole)
	gigs.DELETE("/roles/:roleId", r.controller.RemoveRole)
	gigs.PATCH("/roles/:roleId/email", r.controller.UpdateRoleEmail)
	gigs.PATCH("/roles/:roleId/status", r.controller.UpdateRoleStatus)

	// Public invite links, no session required
	invites := g.Group("/invites")
	invites.GET("/:token", r.controller.GetInvite)
	invites.POST("/:token/respond", r.controller.RespondToInvite)
}
