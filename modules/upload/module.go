package upload

import (
	"gig-planner/core/middleware"
	"gig-planner/core/storage"
	"gig-planner/modules/upload/controller"
	"gig-planner/modules/upload/router"
	"gig-planner/modules/upload/service"

	"github.com/labstack/echo/v4"
)

func Init(
	g *echo.Group,
	mw *middleware.Middleware,
	store storage.ObjectStore,
	avatars service.AvatarWriter,
	setlists service.SetlistStore,
) {
	svc := service.NewUploadService(store, avatars, setlists)
	ctrl := controller.NewUploadController(svc)

	router.NewUploadRouter(ctrl).Register(g, mw)
}
