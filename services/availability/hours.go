package availability

import (
	"context"
	"strings"
	"time"

	"roomview/models"
	"roomview/services/upstream"
	"roomview/utils"

	"go.uber.org/zap"
)

// midnight is the window used for an always-open day. Open equal to
// close makes the grid builder extend the window to the next midnight.
const midnight = "00:00"

// HoursResolver turns the hours source's entry for a date into an
// open/close window, substituting the static fallback window whenever
// the source is unavailable, the entry is missing, or its contents are
// malformed. Resolution never fails.
type HoursResolver struct {
	Source   upstream.HoursSource
	Fallback models.HoursWindow
}

// Resolve returns the window for the given date. The Degraded flag on
// the result distinguishes a genuinely resolved window from the
// fallback.
func (r *HoursResolver) Resolve(ctx context.Context, date time.Time) models.ResolvedWindow {
	logger := utils.GetLogger()
	dateStr := date.Format("2006-01-02")

	day, err := r.Source.DayHours(ctx, dateStr)
	if err != nil {
		logger.Warn("hours lookup failed, using fallback window",
			zap.String("date", dateStr), zap.Error(err))
		return models.ResolvedWindow{Window: r.Fallback, Degraded: true}
	}

	if !strings.EqualFold(strings.TrimSpace(day.Status), "open") {
		logger.Warn("hours entry not open, using fallback window",
			zap.String("date", dateStr), zap.String("status", day.Status))
		return models.ResolvedWindow{Window: r.Fallback, Degraded: true}
	}

	// Open with no sub-intervals means open all day.
	if len(day.Hours) == 0 {
		return models.ResolvedWindow{
			Window: models.HoursWindow{OpenTime: midnight, CloseTime: midnight},
		}
	}

	// Multiple sub-intervals collapse to their extremal bounds: earliest
	// "from" becomes the open, latest "to" becomes the close. Gaps
	// between disjoint intervals are not preserved.
	window, ok := collapseHours(date, day.Hours)
	if !ok {
		logger.Warn("hours entry malformed, using fallback window",
			zap.String("date", dateStr))
		return models.ResolvedWindow{Window: r.Fallback, Degraded: true}
	}
	return models.ResolvedWindow{Window: window}
}

func collapseHours(date time.Time, ranges []models.HourRange) (models.HoursWindow, bool) {
	var (
		window    models.HoursWindow
		earliest  time.Time
		latest    time.Time
		haveOpen  bool
		haveClose bool
	)

	for _, hr := range ranges {
		from, ok := ParseClockTime(date, hr.From)
		if !ok {
			return models.HoursWindow{}, false
		}
		to, ok := ParseClockTime(date, hr.To)
		if !ok {
			return models.HoursWindow{}, false
		}

		if !haveOpen || from.Before(earliest) {
			earliest = from
			window.OpenTime = hr.From
			haveOpen = true
		}
		if !haveClose || to.After(latest) {
			latest = to
			window.CloseTime = hr.To
			haveClose = true
		}
	}

	return window, haveOpen && haveClose
}
