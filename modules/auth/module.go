package auth

import (
	"gig-planner/core/cache"
	"gig-planner/core/database"
	"gig-planner/core/middleware"
	"gig-planner/modules/auth/controller"
	"gig-planner/modules/auth/repository"
	"gig-planner/modules/auth/router"
	"gig-planner/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns its repository so the upload
// module can write avatar URLs.
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, c cache.Cache) *repository.AuthRepository {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(g, mw)

	return repo
}
