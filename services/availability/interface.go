package availability

import (
	"context"

	"roomview/models"
)

// AvailabilityService resolves the current day's slot-by-slot occupancy
// for the room. This is the single entry point the display layer uses.
type AvailabilityService interface {
	TodayAvailability(ctx context.Context) (models.AvailabilityResult, error)
}
