package availability

import (
	"fmt"
	"time"

	"roomview/models"
)

// BuildSlotGrid expands an open/close window on the given date into the
// ordered sequence of fixed-width slots. The second return reports
// whether the window rolled past midnight.
//
// A close that is not strictly after the open is read as a window
// crossing midnight and the close advances one calendar day; this also
// covers the always-open window (open == close == midnight), which
// yields a full 24-hour grid. The first slot is aligned down to the
// nearest slot boundary at or before the open. A window shorter than
// one slot width yields an empty grid.
func BuildSlotGrid(date time.Time, window models.HoursWindow, width time.Duration) (models.SlotGrid, bool, error) {
	openAt, ok := ParseClockTime(date, window.OpenTime)
	if !ok {
		return nil, false, fmt.Errorf("unparseable open time %q", window.OpenTime)
	}
	closeAt, ok := ParseClockTime(date, window.CloseTime)
	if !ok {
		return nil, false, fmt.Errorf("unparseable close time %q", window.CloseTime)
	}

	rollover := false
	if !closeAt.After(openAt) {
		closeAt = closeAt.AddDate(0, 0, 1)
		rollover = true
	}

	var grid models.SlotGrid
	for cur := alignToSlot(openAt, width); !cur.Add(width).After(closeAt); cur = cur.Add(width) {
		grid = append(grid, models.Slot{
			Start: cur,
			End:   cur.Add(width),
			Label: cur.Format(models.SlotLabelLayout),
		})
	}
	return grid, rollover, nil
}

// alignToSlot rounds an instant down to the slot boundary at or before
// it, measured from that day's midnight so DST offset changes cannot
// skew the boundaries.
func alignToSlot(t time.Time, width time.Duration) time.Time {
	elapsed := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	aligned := elapsed - elapsed%width
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).Add(aligned)
}
