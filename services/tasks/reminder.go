package tasks

import (
	"context"
	"encoding/json"
	"time"

	"nailbar/config"
	"nailbar/models"
	"nailbar/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// ReminderLead is how far before the appointment the reminder email fires.
const ReminderLead = 24 * time.Hour

// NewReminderTask builds the queue task for an appointment reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks onto the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler connects a task client to the reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// Schedule enqueues a reminder 24 hours before the appointment starts.
// Appointments closer than the lead time get no reminder.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, appt *models.Appointment) error {
	start, err := utils.CombineDateTime(appt.Date, appt.Time)
	if err != nil {
		return err
	}
	fireAt := start.Add(-ReminderLead)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("reminder skipped, fire time already passed",
			zap.String("appointmentId", appt.ID))
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	utils.GetLogger().Debug("reminder scheduled",
		zap.String("appointmentId", appt.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
