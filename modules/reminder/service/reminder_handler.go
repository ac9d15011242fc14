package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gig-planner/core/logger"
	gigEntity "gig-planner/modules/gig/entity"
	mailerService "gig-planner/modules/mailer/service"
	notifDto "gig-planner/modules/notification/dto"
	notifEntity "gig-planner/modules/notification/entity"
	notifService "gig-planner/modules/notification/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// GigReader is the slice of the gig repository the handler needs.
type GigReader interface {
	GetGigByID(ctx context.Context, id uuid.UUID) (*gigEntity.Gig, error)
	GetRolesByGigID(ctx context.Context, gigID uuid.UUID) ([]gigEntity.GigRole, error)
}

// ReminderHandler processes queued gig reminders.
type ReminderHandler struct {
	gigs   GigReader
	notifs *notifService.NotificationService
	mailer *mailerService.MailerService
}

func NewReminderHandler(
	gigs GigReader,
	notifs *notifService.NotificationService,
	mailer *mailerService.MailerService,
) *ReminderHandler {
	return &ReminderHandler{gigs: gigs, notifs: notifs, mailer: mailer}
}

// Register attaches the handler to the worker mux.
func (h *ReminderHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypeGigReminder, h.HandleGigReminder)
}

// HandleGigReminder emails every accepted musician and drops an in-app
// notification for the owner. The gig state is re-read at fire time, so
// reminders scheduled for since-cancelled or deleted gigs do nothing.
func (h *ReminderHandler) HandleGigReminder(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("ReminderHandler:HandleGigReminder:BadPayload", "error", err)
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	gig, err := h.gigs.GetGigByID(ctx, payload.GigID)
	if err != nil {
		return fmt.Errorf("load gig %s: %w", payload.GigID, err)
	}
	if gig == nil || gig.Status != gigEntity.GigStatusConfirmed {
		logger.Info("ReminderHandler:HandleGigReminder:Skipped",
			"gig_id", payload.GigID, "reason", "gig missing or no longer confirmed")
		return nil
	}

	roles, err := h.gigs.GetRolesByGigID(ctx, gig.ID)
	if err != nil {
		return fmt.Errorf("load roles for gig %s: %w", gig.ID, err)
	}

	sent := 0
	for i := range roles {
		role := &roles[i]
		if role.InvitationStatus != gigEntity.InvitationStatusAccepted || !role.HasContactEmail() {
			continue
		}

		data := mailerService.ReminderEmailData{
			GigTitle: gig.Title,
			RoleName: role.RoleName,
			StartsAt: gig.StartsAt,
		}
		if gig.LocationName != nil {
			data.LocationName = *gig.LocationName
		}

		if err := h.mailer.SendReminder(ctx, *role.ContactEmail, data); err != nil {
			logger.Error("ReminderHandler:HandleGigReminder:Send:Error",
				"role_id", role.ID, "error", err)
			continue
		}
		sent++
	}

	if h.notifs != nil {
		err := h.notifs.Create(ctx, &notifDto.CreateNotificationRequest{
			UserID:  gig.OwnerID,
			Title:   "Gig tomorrow",
			Message: fmt.Sprintf("%q starts %s. Reminders sent to %d musicians.", gig.Title, gig.StartsAt.Format("Monday 3:04 PM"), sent),
			Type:    notifEntity.TypeGigReminder,
			Data: map[string]interface{}{
				"gig_id": gig.ID.String(),
			},
		})
		if err != nil {
			logger.Error("ReminderHandler:HandleGigReminder:Notify:Error", "error", err)
		}
	}

	logger.Info("ReminderHandler:HandleGigReminder:Done", "gig_id", gig.ID, "emails_sent", sent)
	return nil
}
