package notification

import (
	"context"

	"nailbar/models"
)

// NotificationService sends transactional booking emails. Callers treat
// delivery as best-effort: failures are logged, never propagated as
// booking failures.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error
	SendAdminNotification(ctx context.Context, appt *models.Appointment) error
	SendCancellationNotice(ctx context.Context, appt *models.Appointment) error
	SendChangeConfirmation(ctx context.Context, newAppt, original *models.Appointment) error
	SendReminder(ctx context.Context, appt *models.Appointment) error
}
