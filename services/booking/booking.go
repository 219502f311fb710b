package booking

import (
	"context"
	"errors"

	appointmentRepo "nailbar/database/repository/appointment"
	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAppointment validates the request, verifies the day is open and
// the window fits inside it, then books the slot. The conflict rule is
// enforced inside the repository transaction so two concurrent requests
// for the same window cannot both succeed.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	if req.ServiceDuration <= 0 {
		return nil, utils.NewValidationError("serviceDuration must be a positive number of minutes")
	}
	if req.PaymentMethod != "" &&
		req.PaymentMethod != models.PaymentMethodCash &&
		req.PaymentMethod != models.PaymentMethodBankTransfer {
		return nil, utils.NewValidationError("unsupported payment method: %s", req.PaymentMethod)
	}

	start, err := utils.ParseClock(req.Time)
	if err != nil {
		return nil, utils.NewValidationError("invalid time: %s", req.Time)
	}
	end := start + req.ServiceDuration

	startsAt, err := utils.CombineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, utils.NewValidationError("invalid date: %s", req.Date)
	}
	if startsAt.Before(s.now()) {
		return nil, utils.NewValidationError("cannot book an appointment in the past")
	}

	open, window, err := s.Calendar.IsOpen(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, utils.NewValidationError("the salon is closed on %s", req.Date)
	}
	openMin, _ := utils.ParseClock(window.OpenTime)
	closeMin, _ := utils.ParseClock(window.CloseTime)
	if start < openMin || start > closeMin {
		return nil, utils.NewValidationError("requested time %s is outside opening hours (%s-%s)",
			req.Time, window.OpenTime, window.CloseTime)
	}

	now := s.now()
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   NormalizeEmail(req.CustomerEmail),
		CustomerPhone:   req.CustomerPhone,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
		ServiceDuration: req.ServiceDuration,
		Date:            req.Date,
		Time:            req.Time,
		EndTime:         utils.FormatClock(end),
		Start:           start,
		End:             end,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentIntentID: req.PaymentIntentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.InsertIfSlotFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, utils.NewConflictError("the %s slot on %s is no longer available", req.Time, req.Date)
		}
		return nil, utils.NewStorageError(err)
	}

	s.notifyBooked(ctx, appt)
	return appt, nil
}

// notifyBooked sends the confirmation emails and schedules the reminder.
// Delivery failures are logged, never surfaced as booking failures.
func (s *DefaultBookingService) notifyBooked(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, appt); err != nil {
			logger.Warn("booking confirmation email failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
		if err := s.Notifier.SendAdminNotification(ctx, appt); err != nil {
			logger.Warn("admin notification email failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, appt); err != nil {
			logger.Warn("reminder scheduling failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
}
