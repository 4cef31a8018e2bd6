package availability

import (
	"context"
	"fmt"
	"time"

	"roomview/models"
	"roomview/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityEngine assembles the display payload for "today":
// resolve the business window, build the slot grid, mark occupied slots,
// and trim slots whose period has fully elapsed.
type DefaultAvailabilityEngine struct {
	Hours    *HoursResolver
	Bookings *BookingAggregator
	Loc      *time.Location
	Width    time.Duration

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now().In(e.Loc)
	}
	return time.Now().In(e.Loc)
}

// TodayAvailability produces the kiosk payload. Hours failures degrade
// internally to the fallback window; booking or credential failures fail
// the request, since a guessed occupancy would mislead either way.
func (e *DefaultAvailabilityEngine) TodayAvailability(ctx context.Context) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.Loc)

	resolved := e.Hours.Resolve(ctx, today)
	if resolved.Degraded {
		logger.Info("serving availability with fallback hours",
			zap.String("open", resolved.Window.OpenTime),
			zap.String("close", resolved.Window.CloseTime))
	}

	grid, rollover, err := BuildSlotGrid(today, resolved.Window, e.Width)
	if err != nil {
		// Fallback hours are configured and guaranteed parseable, so
		// this only fires on a misconfiguration.
		return models.AvailabilityResult{}, fmt.Errorf("building slot grid: %w", err)
	}

	occupied, err := e.Bookings.Occupied(ctx, today, rollover)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("fetching bookings: %w", err)
	}

	// A slot stays visible until its period has fully elapsed, so one in
	// progress is still shown. If nothing is left (before opening, after
	// closing), show the whole day instead of an empty board.
	remaining := grid[:0:0]
	for _, slot := range grid {
		if slot.End.After(now) {
			remaining = append(remaining, slot)
		}
	}
	if len(remaining) == 0 {
		remaining = grid
	}

	display := make([]models.DisplaySlot, 0, len(remaining))
	for _, slot := range remaining {
		display = append(display, models.DisplaySlot{
			Label:  slot.Label,
			Booked: occupied.Contains(slot.Key()),
		})
	}

	return models.AvailabilityResult{
		DateDisplay: now.Format(models.DateDisplayLayout),
		Grid:        display,
	}, nil
}
