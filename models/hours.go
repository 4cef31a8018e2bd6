package models

// HoursWindow is the textual open/close boundary pair for one calendar
// date, in the format the hours source uses (e.g., "9:00 AM", "17:00").
type HoursWindow struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// ResolvedWindow is an HoursWindow plus the information of how it was
// obtained: Degraded means the upstream hours source could not be used
// and the static fallback window was substituted.
type ResolvedWindow struct {
	Window   HoursWindow
	Degraded bool
}

// HourRange is one open sub-interval within a day, as reported by the
// hours source.
type HourRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DayHours is the hours source's entry for a single calendar date.
type DayHours struct {
	Status string      `json:"status"`
	Hours  []HourRange `json:"hours"`
}
