package booking

import (
	"context"
	"errors"
	"time"

	appointmentRepo "nailbar/database/repository/appointment"
	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChangeWindow is how far ahead the current appointment must be for a
// change to be allowed.
const ChangeWindow = 48 * time.Hour

const changedReason = "Changed to new appointment"

// ChangeAppointment cancels the original appointment and books a linked
// replacement in one transaction. The 48-hour policy is measured against
// the original appointment's start, never the requested new time. The
// replacement inherits the customer identity, payment method and the
// payment status the original held before cancellation.
func (s *DefaultBookingService) ChangeAppointment(ctx context.Context, id string, req ChangeAppointmentRequest) (*ChangeResult, error) {
	original, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original.Status == models.StatusCancelled || original.Status == models.StatusCompleted {
		return nil, utils.NewInvalidStateError("%s appointments cannot be changed", original.Status)
	}

	originalStart, err := utils.CombineDateTime(original.Date, original.Time)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	if originalStart.Before(s.now().Add(ChangeWindow)) {
		return nil, utils.NewPolicyViolationError(
			"Appointments can only be changed up to 48 hours before the scheduled time")
	}

	start, err := utils.ParseClock(req.NewTime)
	if err != nil {
		return nil, utils.NewValidationError("invalid time: %s", req.NewTime)
	}
	if _, err := utils.ParseDate(req.NewDate); err != nil {
		return nil, utils.NewValidationError("invalid date: %s", req.NewDate)
	}

	duration := original.ServiceDuration
	if req.NewEndTime != "" {
		end, err := utils.ParseClock(req.NewEndTime)
		if err != nil {
			return nil, utils.NewValidationError("invalid end time: %s", req.NewEndTime)
		}
		if end <= start {
			return nil, utils.NewValidationError("end time must be after start time")
		}
		duration = end - start
	}
	if duration <= 0 {
		duration = DefaultAppointmentDuration
	}
	end := start + duration

	serviceName := original.ServiceName
	if req.NewServiceName != "" {
		serviceName = req.NewServiceName
	}
	servicePrice := original.ServicePrice
	if req.NewServicePrice > 0 {
		servicePrice = req.NewServicePrice
	}

	now := s.now()
	replacement := &models.Appointment{
		ID:                    uuid.New().String(),
		CustomerName:          original.CustomerName,
		CustomerEmail:         original.CustomerEmail,
		CustomerPhone:         original.CustomerPhone,
		ServiceName:           serviceName,
		ServicePrice:          servicePrice,
		ServiceDuration:       duration,
		Date:                  req.NewDate,
		Time:                  req.NewTime,
		EndTime:               utils.FormatClock(end),
		Start:                 start,
		End:                   end,
		Status:                models.StatusPending,
		PaymentStatus:         original.PaymentStatus,
		PaymentMethod:         original.PaymentMethod,
		PaymentIntentID:       original.PaymentIntentID,
		OriginalAppointmentID: original.ID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.Repo.CancelAndReplace(ctx, original.ID, changedReason, replacement); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return nil, utils.NewConflictError("the %s slot on %s is no longer available", req.NewTime, req.NewDate)
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, utils.NewNotFoundError("appointment %s not found", id)
		default:
			return nil, utils.NewStorageError(err)
		}
	}

	original.Status = models.StatusCancelled
	original.PaymentStatus = models.PaymentCancelled
	original.CancellationReason = changedReason

	if s.Notifier != nil {
		if err := s.Notifier.SendChangeConfirmation(ctx, replacement, original); err != nil {
			utils.GetLogger().Warn("change confirmation email failed",
				zap.String("appointmentId", replacement.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, replacement); err != nil {
			utils.GetLogger().Warn("reminder scheduling failed",
				zap.String("appointmentId", replacement.ID), zap.Error(err))
		}
	}

	return &ChangeResult{NewAppointment: replacement, OriginalAppointment: original}, nil
}
