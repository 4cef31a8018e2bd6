package models

import "time"

// SlotKeyLayout renders a slot start to its identity key. The key carries
// the date so a window that rolls past midnight cannot collide with slots
// of the neighbouring day.
const SlotKeyLayout = "2006-01-02 15:04"

// SlotLabelLayout is the display rendering of a slot start, e.g. "9:30 AM".
const SlotLabelLayout = "3:04 PM"

// DateDisplayLayout is the human-readable rendering of today's date.
const DateDisplayLayout = "Monday, January 2, 2006"

// Slot is one fixed-width interval of the day's grid. Immutable once
// created; identity is the start instant truncated to minute precision.
type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

// Key returns the slot's identity key, e.g. "2025-02-25 09:30".
func (s Slot) Key() string {
	return s.Start.Format(SlotKeyLayout)
}

// SlotGrid is an ordered, contiguous sequence of slots ascending by start.
type SlotGrid []Slot

// DisplaySlot is the externally visible form of one slot.
type DisplaySlot struct {
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

// AvailabilityResult is the payload handed to the kiosk display. It is
// rebuilt from scratch on every request.
type AvailabilityResult struct {
	DateDisplay string        `json:"dateDisplay"`
	Grid        []DisplaySlot `json:"grid"`
}
