package gig

import (
	"gig-planner/core/database"
	"gig-planner/core/middleware"
	"gig-planner/modules/gig/controller"
	"gig-planner/modules/gig/repository"
	"gig-planner/modules/gig/router"
	"gig-planner/modules/gig/service"
	notifService "gig-planner/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the gig module and returns the service for use by other modules.
func Init(
	g *echo.Group,
	db database.IDatabase,
	mw *middleware.Middleware,
	notificationService *notifService.NotificationService,
	canceller service.EventCanceller,
	reminders service.ReminderScheduler,
) service.GigService {
	repo := repository.NewGigRepository(db)
	svc := service.NewGigService(repo, notificationService, canceller, reminders)
	ctrl := controller.NewGigController(svc)
	r := router.NewGigRouter(ctrl)

	r.Register(g, mw)

	return svc
}
