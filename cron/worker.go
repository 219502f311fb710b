package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nailbar/config"
	appointmentRepo "nailbar/database/repository/appointment"
	"nailbar/models"
	"nailbar/services/notification"
	"nailbar/services/tasks"
	"nailbar/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo, notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := repo.FindByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrNotFound) {
				logger.Info("reminder dropped, appointment gone", zap.String("appointmentId", p.AppointmentID))
				return nil
			}
			return err
		}

		// A reminder enqueued before a cancellation or a reschedule must
		// not fire against the stale record.
		if appt.Status == models.StatusCancelled || appt.Date != p.Date || appt.Time != p.Time {
			logger.Info("reminder dropped, appointment changed",
				zap.String("appointmentId", p.AppointmentID), zap.String("status", appt.Status))
			return nil
		}

		if err := notifSvc.SendReminder(ctx, appt); err != nil {
			logger.Error("failed to send reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
			return err
		}
		logger.Info("reminder sent", zap.String("appointmentId", appt.ID))
		return nil
	}
}
