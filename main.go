package main

import (
	"gig-planner/core/logger"
	"gig-planner/core/server"

	_ "gig-planner/docs" // Swagger docs
)

// @title Gig Planner API
// @version 1.0
// @description API backend for the Gig Planner app - lineups, calendar sync and invitations
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@gigplanner.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
