package calendar

import (
	"context"

	"nailbar/models"
)

// Window is a day's open/close range.
type Window struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// CalendarService answers whether a date is open for booking and manages
// the weekly schedule and one-off closure dates.
type CalendarService interface {
	// GetSchedule returns the seven-day schedule in canonical Monday-first
	// order, synthesizing and persisting the default on first read.
	GetSchedule(ctx context.Context) ([]models.DaySchedule, error)
	// SetSchedule replaces the active schedule wholesale.
	SetSchedule(ctx context.Context, days []models.DaySchedule) error
	// IsOpen reports whether a date is bookable and, if so, its window.
	IsOpen(ctx context.Context, date string) (bool, *Window, error)
	// ListClosures returns all recorded closure dates.
	ListClosures(ctx context.Context) ([]models.ClosureDate, error)
	// AddClosureDate records a full-day closure for a future date.
	AddClosureDate(ctx context.Context, date, reason string) (*models.ClosureDate, error)
	// RemoveClosureDate deletes a closure by id.
	RemoveClosureDate(ctx context.Context, id string) error
}
