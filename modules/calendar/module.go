package calendar

import (
	"gig-planner/core/database"
	"gig-planner/core/middleware"
	"gig-planner/modules/calendar/controller"
	"gig-planner/modules/calendar/repository"
	"gig-planner/modules/calendar/router"
	"gig-planner/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init wires the calendar module. The dispatch service is returned so the
// gig module can cancel provider events before a gig is deleted.
func Init(
	g *echo.Group,
	db database.IDatabase,
	mw *middleware.Middleware,
	gigs service.GigStore,
	mailer service.InvitationMailer,
) service.DispatchService {
	repo := repository.NewCalendarRepository(db)
	oauth := service.NewOAuthService(repo)
	events := service.NewGoogleEventClient()
	dispatch := service.NewDispatchService(repo, gigs, oauth, events, mailer)
	ctrl := controller.NewCalendarController(oauth, dispatch)
	r := router.NewCalendarRouter(ctrl)

	r.Register(g, mw)

	return dispatch
}
