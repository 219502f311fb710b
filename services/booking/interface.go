package booking

import (
	"context"
	"time"

	appointmentRepo "nailbar/database/repository/appointment"
	serviceRepo "nailbar/database/repository/service"
	"nailbar/models"
	"nailbar/services/calendar"
	"nailbar/services/notification"
)

// Actor identifies who is performing a guarded operation. Admin actors
// bypass the customer-only cancellation guards.
type Actor struct {
	Email string
	Admin bool
}

// CreateAppointmentRequest is the input to CreateAppointment.
type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail" binding:"required"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	ServiceName     string  `json:"serviceName" binding:"required"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentIntentID string  `json:"paymentIntentId"`
}

// ChangeAppointmentRequest is the input to ChangeAppointment. Service
// fields are optional; when omitted the original's values carry over.
type ChangeAppointmentRequest struct {
	NewDate         string  `json:"newDate" binding:"required"`
	NewTime         string  `json:"newTime" binding:"required"`
	NewEndTime      string  `json:"newEndTime"`
	NewServiceName  string  `json:"newServiceName"`
	NewServicePrice float64 `json:"newServicePrice"`
}

// ChangeResult carries both records produced by a change operation.
type ChangeResult struct {
	NewAppointment      *models.Appointment `json:"newAppointment"`
	OriginalAppointment *models.Appointment `json:"originalAppointment"`
}

// ReminderScheduler schedules and drops appointment reminder emails.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt *models.Appointment) error
}

// BookingService is the scheduling and lifecycle engine.
type BookingService interface {
	// GenerateSlots produces the bookable time grid for a date and total
	// service duration.
	GenerateSlots(ctx context.Context, date string, durationMinutes int) ([]models.Slot, error)
	// CreateAppointment validates and books a slot, performing the
	// authoritative conflict check at write time.
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
	// CancelAppointment applies the guarded cancel transition.
	CancelAppointment(ctx context.Context, id string, actor Actor) (*models.Appointment, error)
	// ChangeAppointment cancels the original and books a linked
	// replacement under the 48-hour policy.
	ChangeAppointment(ctx context.Context, id string, req ChangeAppointmentRequest) (*ChangeResult, error)
	// UpdateStatus applies an admin-driven status transition.
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error)
	// UpdatePaymentStatus applies an admin-driven payment transition.
	UpdatePaymentStatus(ctx context.Context, id, newPaymentStatus string) (*models.Appointment, error)
	// FindCustomerAppointments looks up a customer's appointments with
	// tolerant phone matching.
	FindCustomerAppointments(ctx context.Context, email, phone string) ([]models.Appointment, error)
	// StartSession prices a selection and caches a checkout session.
	StartSession(ctx context.Context, items []models.SessionItem) (*models.BookingSession, error)
	// GetSession retrieves a cached checkout session.
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	// DropSession discards a checkout session after confirmation.
	DropSession(ctx context.Context, sessionID string)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         appointmentRepo.AppointmentRepository
	ServicesRepo serviceRepo.ServiceRepository
	Calendar     calendar.CalendarService
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
