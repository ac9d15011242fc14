package notification

import (
	"gig-planner/core/database"
	"gig-planner/core/middleware"
	"gig-planner/modules/notification/controller"
	"gig-planner/modules/notification/repository"
	"gig-planner/modules/notification/router"
	"gig-planner/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(g, mw)

	return svc
}
