package booking

import (
	"context"
	"errors"

	appointmentRepo "nailbar/database/repository/appointment"
	"nailbar/models"
	"nailbar/utils"

	"go.uber.org/zap"
)

// CancelAppointment applies the guarded cancel transition. Cancelling
// forces paymentStatus to cancelled as well; the two never diverge.
// Customers cannot cancel completed or already-started appointments;
// admins can.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id string, actor Actor) (*models.Appointment, error) {
	appt, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled {
		return nil, utils.NewInvalidStateError("appointment is already cancelled")
	}
	if !actor.Admin {
		if appt.Status == models.StatusCompleted {
			return nil, utils.NewInvalidStateError("completed appointments cannot be cancelled")
		}
		startsAt, err := utils.CombineDateTime(appt.Date, appt.Time)
		if err != nil {
			return nil, utils.NewStorageError(err)
		}
		if startsAt.Before(s.now()) {
			return nil, utils.NewInvalidStateError("past appointments cannot be cancelled")
		}
	}

	fields := map[string]any{
		"status":        models.StatusCancelled,
		"paymentStatus": models.PaymentCancelled,
	}
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, mapRepoError(err, id)
	}
	appt.Status = models.StatusCancelled
	appt.PaymentStatus = models.PaymentCancelled

	if s.Notifier != nil {
		if err := s.Notifier.SendCancellationNotice(ctx, appt); err != nil {
			utils.GetLogger().Warn("cancellation email failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// UpdateStatus applies an admin status transition. Completed and cancelled
// are terminal; cancellation goes through CancelAppointment so the payment
// status invariant holds.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error) {
	switch newStatus {
	case models.StatusConfirmed, models.StatusCompleted:
	case models.StatusCancelled:
		return s.CancelAppointment(ctx, id, Actor{Admin: true})
	default:
		return nil, utils.NewValidationError("unknown status: %s", newStatus)
	}

	appt, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case models.StatusCompleted:
		return nil, utils.NewInvalidStateError("appointment is already completed")
	case models.StatusCancelled:
		return nil, utils.NewInvalidStateError("cancelled appointments cannot change status")
	}
	if newStatus == models.StatusConfirmed && appt.Status != models.StatusPending {
		return nil, utils.NewInvalidStateError("only pending appointments can be confirmed")
	}

	if err := s.Repo.UpdateFields(ctx, id, map[string]any{"status": newStatus}); err != nil {
		return nil, mapRepoError(err, id)
	}
	appt.Status = newStatus
	return appt, nil
}

// UpdatePaymentStatus applies an admin payment transition. Payments on a
// cancelled appointment are frozen at cancelled; refunds require a prior
// paid state.
func (s *DefaultBookingService) UpdatePaymentStatus(ctx context.Context, id, newPaymentStatus string) (*models.Appointment, error) {
	if newPaymentStatus != models.PaymentPaid && newPaymentStatus != models.PaymentRefunded {
		return nil, utils.NewValidationError("unknown payment status: %s", newPaymentStatus)
	}

	appt, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled || appt.PaymentStatus == models.PaymentCancelled {
		return nil, utils.NewInvalidStateError("payment status of a cancelled appointment cannot change")
	}
	if newPaymentStatus == models.PaymentPaid && appt.PaymentStatus != models.PaymentPending {
		return nil, utils.NewInvalidStateError("only pending payments can be marked paid")
	}
	if newPaymentStatus == models.PaymentRefunded && appt.PaymentStatus != models.PaymentPaid {
		return nil, utils.NewInvalidStateError("only paid appointments can be refunded")
	}

	if err := s.Repo.UpdateFields(ctx, id, map[string]any{"paymentStatus": newPaymentStatus}); err != nil {
		return nil, mapRepoError(err, id)
	}
	appt.PaymentStatus = newPaymentStatus
	return appt, nil
}

func (s *DefaultBookingService) findByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	return appt, nil
}

func mapRepoError(err error, id string) error {
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return utils.NewNotFoundError("appointment %s not found", id)
	}
	return utils.NewStorageError(err)
}
