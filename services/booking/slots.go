package booking

import (
	"context"
	"time"

	"nailbar/models"
	"nailbar/utils"
)

// SlotGranularityMinutes is the step between candidate start times. The
// grid is recomputed fresh per request; nothing is cached.
const SlotGranularityMinutes = 15

// GenerateSlots produces the ordered bookable time grid for a date. Each
// candidate start is marked unavailable when it is in the past (today
// only) or when its window would overlap an existing non-cancelled
// appointment. Closed days yield an empty grid.
func (s *DefaultBookingService) GenerateSlots(ctx context.Context, date string, durationMinutes int) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, utils.NewValidationError("duration must be a positive number of minutes")
	}
	parsed, err := utils.ParseDate(date)
	if err != nil {
		return nil, utils.NewValidationError("invalid date: %s", date)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return nil, utils.NewValidationError("cannot generate slots for a past date")
	}

	open, window, err := s.Calendar.IsOpen(ctx, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return []models.Slot{}, nil
	}

	openMin, err := utils.ParseClock(window.OpenTime)
	if err != nil {
		return nil, utils.NewValidationError("invalid schedule window: %v", err)
	}
	closeMin, err := utils.ParseClock(window.CloseTime)
	if err != nil {
		return nil, utils.NewValidationError("invalid schedule window: %v", err)
	}

	existing, err := s.Repo.FindActiveByDate(ctx, date)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	isToday := parsed.Equal(today)
	nowMin := now.Hour()*60 + now.Minute()

	var slots []models.Slot
	for t := openMin; t <= closeMin; t += SlotGranularityMinutes {
		available := true
		if isToday && t <= nowMin {
			available = false
		}
		if available && conflictsWithAny(t, durationMinutes, existing) {
			available = false
		}
		slots = append(slots, models.Slot{
			Time:      utils.FormatClock(t),
			Available: available,
		})
	}
	return slots, nil
}
