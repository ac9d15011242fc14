package router

import (
	"gig-planner/core/middleware"
	"gig-planner/modules/upload/controller"

	"github.com/labstack/echo/v4"
)

type UploadRouter struct {
	controller *controller.UploadController
}

func NewUploadRouter(controller *controller.UploadController) *UploadRouter {
	return &UploadRouter{controller: controller}
}

func (r *UploadRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	uploads := g.Group("", mw.AuthMiddleware())
	uploads.POST("/users/me/avatar", r.controller.UploadAvatar)
	uploads.POST("/gigs/:id/setlist", r.controller.UploadSetlist)
}
