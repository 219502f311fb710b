package calendar

import (
	"context"
	"errors"
	"time"

	calendarRepo "nailbar/database/repository/calendar"
	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
)

// Default window applied when no schedule has been configured yet.
const (
	defaultOpenTime  = "08:00"
	defaultCloseTime = "20:00"
)

// weekdayOrder is the canonical Monday-first ordering. Call sites that
// submit Sunday-first payloads are normalized here and never leak their
// ordering downstream.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultCalendarService is the production CalendarService.
type DefaultCalendarService struct {
	Repo calendarRepo.CalendarRepository
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetSchedule returns the active schedule, synthesizing and persisting the
// default (all days open 08:00-20:00) when none exists yet.
func (s *DefaultCalendarService) GetSchedule(ctx context.Context) ([]models.DaySchedule, error) {
	schedule, err := s.Repo.GetActiveSchedule(ctx)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	if schedule == nil {
		schedule = defaultSchedule()
		if err := s.Repo.ReplaceSchedule(ctx, schedule); err != nil {
			return nil, utils.NewStorageError(err)
		}
	}
	days, err := normalizeDays(schedule.Days)
	if err != nil {
		return nil, err
	}
	return days, nil
}

// SetSchedule validates and replaces the active schedule wholesale.
func (s *DefaultCalendarService) SetSchedule(ctx context.Context, days []models.DaySchedule) error {
	normalized, err := normalizeDays(days)
	if err != nil {
		return err
	}
	schedule := &models.WeeklySchedule{Days: normalized}
	if err := s.Repo.ReplaceSchedule(ctx, schedule); err != nil {
		return utils.NewStorageError(err)
	}
	return nil
}

// IsOpen reports whether a date is bookable. A date is closed when it has a
// recorded closure or when its weekday is marked closed in the schedule.
func (s *DefaultCalendarService) IsOpen(ctx context.Context, date string) (bool, *Window, error) {
	parsed, err := utils.ParseDate(date)
	if err != nil {
		return false, nil, utils.NewValidationError("invalid date: %s", date)
	}

	closure, err := s.Repo.FindClosureByDate(ctx, date)
	if err != nil {
		return false, nil, utils.NewStorageError(err)
	}
	if closure != nil {
		return false, nil, nil
	}

	days, err := s.GetSchedule(ctx)
	if err != nil {
		return false, nil, err
	}
	dayName := parsed.Weekday().String()
	for _, d := range days {
		if d.Day != dayName {
			continue
		}
		if !d.IsOpen {
			return false, nil, nil
		}
		return true, &Window{OpenTime: d.OpenTime, CloseTime: d.CloseTime}, nil
	}
	return false, nil, nil
}

// ListClosures returns all recorded closure dates.
func (s *DefaultCalendarService) ListClosures(ctx context.Context) ([]models.ClosureDate, error) {
	closures, err := s.Repo.ListClosures(ctx)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return closures, nil
}

// AddClosureDate records a closure. Dates strictly before today are
// rejected; the comparison is date-only, so a closure for today is allowed.
func (s *DefaultCalendarService) AddClosureDate(ctx context.Context, date, reason string) (*models.ClosureDate, error) {
	parsed, err := utils.ParseDate(date)
	if err != nil {
		return nil, utils.NewValidationError("invalid date: %s", date)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return nil, utils.NewValidationError("closure date %s is in the past", date)
	}

	closure := &models.ClosureDate{
		ID:        uuid.New().String(),
		Date:      date,
		Reason:    reason,
		CreatedAt: now,
	}
	if err := s.Repo.AddClosure(ctx, closure); err != nil {
		if errors.Is(err, calendarRepo.ErrDuplicateClosure) {
			return nil, utils.NewValidationError("a closure already exists for %s", date)
		}
		return nil, utils.NewStorageError(err)
	}
	return closure, nil
}

// RemoveClosureDate deletes a closure by id, signalling not-found.
func (s *DefaultCalendarService) RemoveClosureDate(ctx context.Context, id string) error {
	if err := s.Repo.RemoveClosure(ctx, id); err != nil {
		if errors.Is(err, calendarRepo.ErrNotFound) {
			return utils.NewNotFoundError("closure %s not found", id)
		}
		return utils.NewStorageError(err)
	}
	return nil
}

func defaultSchedule() *models.WeeklySchedule {
	days := make([]models.DaySchedule, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		days = append(days, models.DaySchedule{
			Day:       day,
			IsOpen:    true,
			OpenTime:  defaultOpenTime,
			CloseTime: defaultCloseTime,
		})
	}
	return &models.WeeklySchedule{Days: days}
}

// normalizeDays validates a submitted schedule (exactly one entry per
// weekday, open < close when open) and reorders it Monday-first.
func normalizeDays(days []models.DaySchedule) ([]models.DaySchedule, error) {
	if len(days) != 7 {
		return nil, utils.NewValidationError("schedule must contain exactly 7 days, got %d", len(days))
	}
	byDay := make(map[string]models.DaySchedule, 7)
	for _, d := range days {
		if _, dup := byDay[d.Day]; dup {
			return nil, utils.NewValidationError("duplicate schedule entry for %s", d.Day)
		}
		if d.IsOpen {
			openMin, err := utils.ParseClock(d.OpenTime)
			if err != nil {
				return nil, utils.NewValidationError("%s: %v", d.Day, err)
			}
			closeMin, err := utils.ParseClock(d.CloseTime)
			if err != nil {
				return nil, utils.NewValidationError("%s: %v", d.Day, err)
			}
			if openMin >= closeMin {
				return nil, utils.NewValidationError("%s: openTime must be before closeTime", d.Day)
			}
		}
		byDay[d.Day] = d
	}

	normalized := make([]models.DaySchedule, 0, 7)
	for _, day := range weekdayOrder {
		d, ok := byDay[day]
		if !ok {
			return nil, utils.NewValidationError("schedule is missing an entry for %s", day)
		}
		normalized = append(normalized, d)
	}
	return normalized, nil
}
