package models

import "strings"

// BookingInterval is one booking record as returned by the booking
// source. From/To are raw datetime strings; Status is the source's own
// wording and must go through ParseBookingStatus before use.
type BookingInterval struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"`
}

// BookingStatus is the closed set of booking states this service
// distinguishes. Anything the source reports that is not in the table
// maps to StatusUnknown and never occupies a slot.
type BookingStatus int

const (
	StatusUnknown BookingStatus = iota
	StatusConfirmed
	StatusCheckedIn
	StatusActive
	StatusBooked
	StatusCanceled
	StatusRejected
	StatusPendingCancel
)

// statusTable maps normalized source wordings to statuses. Policy table:
// extend here, not at call sites.
var statusTable = map[string]BookingStatus{
	"confirmed":      StatusConfirmed,
	"checked-in":     StatusCheckedIn,
	"checked in":     StatusCheckedIn,
	"active":         StatusActive,
	"booked":         StatusBooked,
	"canceled":       StatusCanceled,
	"cancelled":      StatusCanceled,
	"rejected":       StatusRejected,
	"pending-cancel": StatusPendingCancel,
	"pending cancel": StatusPendingCancel,
}

// ParseBookingStatus normalizes a raw status string (case-insensitive,
// surrounding and internal whitespace collapsed) and looks it up.
func ParseBookingStatus(raw string) BookingStatus {
	normalized := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	return statusTable[normalized]
}

// Occupies reports whether a booking in this status currently holds the
// room.
func (s BookingStatus) Occupies() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusActive, StatusBooked:
		return true
	}
	return false
}

// OccupancySet is the set of slot identity keys covered by active
// bookings.
type OccupancySet map[string]struct{}

// Add records a slot key as occupied.
func (o OccupancySet) Add(key string) {
	o[key] = struct{}{}
}

// Contains reports whether a slot key is occupied.
func (o OccupancySet) Contains(key string) bool {
	_, ok := o[key]
	return ok
}
