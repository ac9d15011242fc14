package reminder

import (
	mailerService "gig-planner/modules/mailer/service"
	notifService "gig-planner/modules/notification/service"
	"gig-planner/modules/reminder/service"

	"github.com/hibiken/asynq"
)

// Init wires the reminder scheduler and its worker handler. The returned
// service is handed to the gig module so ConfirmGig can queue reminders.
func Init(
	client *asynq.Client,
	mux *asynq.ServeMux,
	gigs service.GigReader,
	notifs *notifService.NotificationService,
	mailer *mailerService.MailerService,
) *service.ReminderService {
	svc := service.NewReminderService(client)

	if mux != nil {
		handler := service.NewReminderHandler(gigs, notifs, mailer)
		handler.Register(mux)
	}

	return svc
}
