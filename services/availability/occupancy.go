package availability

import (
	"context"
	"sync"
	"time"

	"roomview/models"
	"roomview/services/upstream"
	"roomview/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BookingAggregator expands the room's active bookings into the set of
// occupied slot keys.
type BookingAggregator struct {
	Source upstream.BookingSource
	Width  time.Duration
	Loc    *time.Location
}

// Occupied fetches bookings for the given date and, when the business
// window rolls past midnight, for the following date as well; the two
// fetches run concurrently. A fetch failure is fatal: guessing at
// occupancy would mislead the display either way.
//
// Bookings whose status is not an occupying one contribute nothing.
// Bookings with unparseable boundaries are skipped and logged, never
// fatal.
func (a *BookingAggregator) Occupied(ctx context.Context, date time.Time, rollover bool) (models.OccupancySet, error) {
	dates := []string{date.Format("2006-01-02")}
	if rollover {
		dates = append(dates, date.AddDate(0, 0, 1).Format("2006-01-02"))
	}

	var (
		mu       sync.Mutex
		bookings []models.BookingInterval
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range dates {
		g.Go(func() error {
			day, err := a.Source.Bookings(gctx, d)
			if err != nil {
				return err
			}
			mu.Lock()
			bookings = append(bookings, day...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return a.expand(bookings), nil
}

// expand walks each active booking's [start, end) range in slot-width
// steps, marking the containing slot key for each step. Keys carry the
// date, so a booking crossing midnight marks slots on both days without
// bleeding into unrelated dates.
func (a *BookingAggregator) expand(bookings []models.BookingInterval) models.OccupancySet {
	logger := utils.GetLogger()
	occupied := make(models.OccupancySet)

	for _, b := range bookings {
		if !models.ParseBookingStatus(b.Status).Occupies() {
			continue
		}

		start, ok := ParseBookingTime(b.From, a.Loc)
		if !ok {
			logger.Warn("skipping booking with unparseable start", zap.String("from", b.From))
			continue
		}
		end, ok := ParseBookingTime(b.To, a.Loc)
		if !ok {
			logger.Warn("skipping booking with unparseable end", zap.String("to", b.To))
			continue
		}

		for cur := alignToSlot(start, a.Width); cur.Before(end); cur = cur.Add(a.Width) {
			occupied.Add(cur.Format(models.SlotKeyLayout))
		}
	}
	return occupied
}
