package appointmentRepo

import (
	"context"
	"errors"

	"nailbar/models"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// ErrSlotTaken is returned by the transactional insert paths when another
// non-cancelled appointment already occupies the requested window.
var ErrSlotTaken = errors.New("slot already booked")

// AppointmentRepository defines the data access methods used by the
// booking engine.
type AppointmentRepository interface {
	// FindByID retrieves a single appointment, ErrNotFound if missing.
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	// FindActiveByDate retrieves all non-cancelled appointments on a date.
	FindActiveByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// FindByCustomer retrieves appointments matching a lowercased email or
	// any of the supplied phone forms.
	FindByCustomer(ctx context.Context, email string, phoneForms []string) ([]models.Appointment, error)
	// FindByRange lists appointments in an inclusive date range, optionally
	// filtered by status. Empty bounds are open-ended.
	FindByRange(ctx context.Context, from, to, status string) ([]models.Appointment, error)
	// InsertIfSlotFree re-checks the conflict rule and inserts inside a
	// single transaction, returning ErrSlotTaken on overlap.
	InsertIfSlotFree(ctx context.Context, appt *models.Appointment) error
	// CancelAndReplace cancels the original appointment and inserts its
	// replacement in one transaction, re-checking the replacement's window
	// against every non-cancelled appointment except the original.
	CancelAndReplace(ctx context.Context, originalID, reason string, replacement *models.Appointment) error
	// UpdateFields applies a partial update and bumps updatedAt.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Delete removes an appointment record, ErrNotFound if missing.
	Delete(ctx context.Context, id string) error
	// MonthlyRevenue sums servicePrice of completed, paid appointments per
	// month of the given year.
	MonthlyRevenue(ctx context.Context, year int) ([]models.MonthRevenue, error)
	// EnsureIndexes creates the indexes the conflict rule relies on.
	EnsureIndexes(ctx context.Context) error
}
