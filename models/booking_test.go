package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		raw      string
		want     BookingStatus
		occupies bool
	}{
		{"confirmed", StatusConfirmed, true},
		{"Confirmed", StatusConfirmed, true},
		{"  CONFIRMED  ", StatusConfirmed, true},
		{"checked-in", StatusCheckedIn, true},
		{"Checked  In", StatusCheckedIn, true},
		{"active", StatusActive, true},
		{"booked", StatusBooked, true},
		{"canceled", StatusCanceled, false},
		{"cancelled", StatusCanceled, false},
		{"rejected", StatusRejected, false},
		{"Pending-Cancel", StatusPendingCancel, false},
		{"no-show", StatusUnknown, false},
		{"", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseBookingStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.occupies, got.Occupies())
		})
	}
}

func TestOccupancySet(t *testing.T) {
	set := make(OccupancySet)
	assert.False(t, set.Contains("2025-02-25 10:00"))

	set.Add("2025-02-25 10:00")
	set.Add("2025-02-25 10:00")
	assert.True(t, set.Contains("2025-02-25 10:00"))
	assert.Len(t, set, 1)
}
