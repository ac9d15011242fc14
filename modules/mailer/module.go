package mailer

import (
	"gig-planner/core/config"
	"gig-planner/core/logger"
	"gig-planner/core/middleware"
	"gig-planner/modules/mailer/controller"
	"gig-planner/modules/mailer/router"
	"gig-planner/modules/mailer/service"

	"github.com/labstack/echo/v4"
)

// Init wires the mailer module and returns the service for the calendar
// dispatcher's email fallback path.
func Init(g *echo.Group, mw *middleware.Middleware) *service.MailerService {
	var sender service.MailSender

	cfg, ok := config.GetSafe()
	if ok && cfg.SMTP.Host != "" {
		s, err := service.NewSMTPSender(service.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			logger.Error("Mailer:Init:SMTP:Error", "error", err)
		} else {
			sender = s
		}
	} else {
		logger.Warn("Mailer:Init:Skipped", "reason", "SMTP not configured, email delivery disabled")
	}

	svc := service.NewMailerService(sender)
	ctrl := controller.NewMailerController(svc)
	r := router.NewMailerRouter(ctrl)

	r.Register(g, mw)

	return svc
}
