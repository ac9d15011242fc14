package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gig-planner/core/constants"
	"gig-planner/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskTypeGigReminder is the asynq task type for the day-before reminder.
const TaskTypeGigReminder = "gig:reminder"

// ReminderPayload is the task body. The handler re-reads the gig so a gig
// cancelled after scheduling sends nothing.
type ReminderPayload struct {
	GigID uuid.UUID `json:"gig_id"`
}

// ReminderService enqueues reminder tasks when gigs are confirmed.
type ReminderService struct {
	client *asynq.Client
}

func NewReminderService(client *asynq.Client) *ReminderService {
	return &ReminderService{client: client}
}

// ScheduleGigReminder queues the reminder to fire one lead interval before
// the gig starts. Gigs already inside the lead window are skipped. The
// task id is derived from the gig id so re-confirming does not stack
// duplicate reminders.
func (s *ReminderService) ScheduleGigReminder(ctx context.Context, gigID uuid.UUID, startsAt time.Time) error {
	if s.client == nil {
		logger.Warn("ReminderService:ScheduleGigReminder:Skipped", "reason", "queue not configured")
		return nil
	}

	processAt := startsAt.Add(-constants.GigReminderLead)
	if processAt.Before(time.Now()) {
		logger.Info("ReminderService:ScheduleGigReminder:TooLate",
			"gig_id", gigID, "starts_at", startsAt)
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{GigID: gigID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeGigReminder, payload)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(processAt),
		asynq.TaskID(TaskTypeGigReminder+":"+gigID.String()),
		asynq.MaxRetry(3),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Info("ReminderService:ScheduleGigReminder:AlreadyQueued", "gig_id", gigID)
		return nil
	}
	if err != nil {
		logger.Error("ReminderService:ScheduleGigReminder:Enqueue:Error",
			"gig_id", gigID, "error", err)
		return err
	}

	logger.Info("ReminderService:ScheduleGigReminder:Queued",
		"gig_id", gigID, "process_at", processAt)
	return nil
}
