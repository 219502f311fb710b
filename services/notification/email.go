package notification

import (
	"context"
	"fmt"

	"nailbar/config"
	"nailbar/models"
	"nailbar/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotificationService delivers booking emails through Resend.
type ResendNotificationService struct {
	client     *resend.Client
	from       string
	adminEmail string
}

// NewResendNotificationService constructs the production mailer from the
// loaded configuration.
func NewResendNotificationService() *ResendNotificationService {
	return &ResendNotificationService{
		client:     resend.NewClient(config.AppConfig.ResendAPIKey),
		from:       config.AppConfig.BookingFromEmail,
		adminEmail: config.AppConfig.AdminEmail,
	}
}

func (s *ResendNotificationService) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	subject := fmt.Sprintf("Booking confirmed for %s at %s", appt.Date, appt.Time)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your appointment for <strong>%s</strong> is booked for <strong>%s at %s</strong>.</p><p>Total: £%.2f</p>",
		appt.CustomerName, appt.ServiceName, appt.Date, appt.Time, appt.ServicePrice)
	return s.send(ctx, []string{appt.CustomerEmail}, subject, html)
}

func (s *ResendNotificationService) SendAdminNotification(ctx context.Context, appt *models.Appointment) error {
	if s.adminEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("New booking: %s on %s at %s", appt.CustomerName, appt.Date, appt.Time)
	html := fmt.Sprintf(
		"<p>%s (%s, %s) booked <strong>%s</strong> on %s at %s for £%.2f.</p>",
		appt.CustomerName, appt.CustomerEmail, appt.CustomerPhone,
		appt.ServiceName, appt.Date, appt.Time, appt.ServicePrice)
	return s.send(ctx, []string{s.adminEmail}, subject, html)
}

func (s *ResendNotificationService) SendCancellationNotice(ctx context.Context, appt *models.Appointment) error {
	subject := fmt.Sprintf("Appointment cancelled: %s at %s", appt.Date, appt.Time)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your appointment for <strong>%s</strong> on %s at %s has been cancelled.</p>",
		appt.CustomerName, appt.ServiceName, appt.Date, appt.Time)
	return s.send(ctx, []string{appt.CustomerEmail}, subject, html)
}

func (s *ResendNotificationService) SendChangeConfirmation(ctx context.Context, newAppt, original *models.Appointment) error {
	subject := fmt.Sprintf("Appointment moved to %s at %s", newAppt.Date, newAppt.Time)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your appointment on %s at %s has been moved to <strong>%s at %s</strong>.</p>",
		newAppt.CustomerName, original.Date, original.Time, newAppt.Date, newAppt.Time)
	return s.send(ctx, []string{newAppt.CustomerEmail}, subject, html)
}

func (s *ResendNotificationService) SendReminder(ctx context.Context, appt *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: your appointment tomorrow at %s", appt.Time)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>A reminder that your appointment for <strong>%s</strong> is on %s at %s.</p>",
		appt.CustomerName, appt.ServiceName, appt.Date, appt.Time)
	return s.send(ctx, []string{appt.CustomerEmail}, subject, html)
}

func (s *ResendNotificationService) send(ctx context.Context, to []string, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	utils.GetLogger().Debug("email sent", zap.String("emailId", sent.Id), zap.String("subject", subject))
	return nil
}
