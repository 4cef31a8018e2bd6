package availability

import "time"

// clockLayouts are the admissible time-of-day shapes, tried in order.
// The order matters: some inputs parse under more than one layout, so
// the richest forms (12-hour with minutes and meridiem) come first, then
// 24-hour, then bare-hour meridiem forms. "15:04" also accepts a
// single-digit hour, which covers 24-hour times without a leading zero.
var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"03:04 PM",
	"03:04PM",
	"15:04",
	"3 PM",
	"3PM",
}

// ParseClockTime parses a human time-of-day string and anchors it to the
// given calendar date in its location. The second return is false when
// no layout matches; callers apply their own fallback policy.
func ParseClockTime(date time.Time, value string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(layout, value, date.Location())
		if err != nil {
			continue
		}
		return time.Date(date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0, date.Location()), true
	}
	return time.Time{}, false
}

// bookingLayouts are the admissible datetime shapes for booking
// interval boundaries.
var bookingLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseBookingTime parses a booking interval boundary in the display
// location.
func ParseBookingTime(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range bookingLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		return t.In(loc), true
	}
	return time.Time{}, false
}
