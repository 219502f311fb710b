package calendarRepo

import (
	"context"
	"errors"

	"nailbar/models"
)

// ErrNotFound is returned when a closure id does not exist.
var ErrNotFound = errors.New("closure date not found")

// ErrDuplicateClosure is returned when a closure already exists for a date.
var ErrDuplicateClosure = errors.New("closure date already exists")

// CalendarRepository defines data access for the weekly schedule and the
// one-off closure dates.
type CalendarRepository interface {
	// GetActiveSchedule returns the active schedule, or nil if none has
	// been persisted yet.
	GetActiveSchedule(ctx context.Context) (*models.WeeklySchedule, error)
	// ReplaceSchedule upserts the single active schedule document.
	ReplaceSchedule(ctx context.Context, schedule *models.WeeklySchedule) error
	// ListClosures returns all recorded closure dates.
	ListClosures(ctx context.Context) ([]models.ClosureDate, error)
	// FindClosureByDate returns the closure for a date, nil if none.
	FindClosureByDate(ctx context.Context, date string) (*models.ClosureDate, error)
	// AddClosure inserts a closure, ErrDuplicateClosure on a taken date.
	AddClosure(ctx context.Context, closure *models.ClosureDate) error
	// RemoveClosure deletes a closure by id, ErrNotFound if missing.
	RemoveClosure(ctx context.Context, id string) error
}
