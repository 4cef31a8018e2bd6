package upstream

import (
	"context"
	"fmt"
	"net/http"

	"roomview/models"
	"roomview/services/token"

	"github.com/tidwall/gjson"
)

// HoursSource yields the business-hours entry for a calendar date.
type HoursSource interface {
	DayHours(ctx context.Context, date string) (models.DayHours, error)
}

// HoursClient reads opening hours from the tenant API. The payload is a
// JSON array whose first element carries a "dates" object keyed by ISO
// date.
type HoursClient struct {
	HTTP       *http.Client
	Tokens     token.TokenProvider
	BaseURL    string
	LocationID string
}

// DayHours fetches the hours entry for the given ISO date. A missing
// entry is an error; the caller decides the fallback policy.
func (c *HoursClient) DayHours(ctx context.Context, date string) (models.DayHours, error) {
	url := fmt.Sprintf("%s/api/locations/%s/hours?date=%s", c.BaseURL, c.LocationID, date)

	body, err := getJSON(ctx, c.HTTP, c.Tokens, url)
	if err != nil {
		return models.DayHours{}, err
	}

	entry := gjson.GetBytes(body, "0.dates."+date)
	if !entry.Exists() {
		return models.DayHours{}, fmt.Errorf("hours response has no entry for %s", date)
	}

	day := models.DayHours{Status: entry.Get("status").String()}
	for _, h := range entry.Get("hours").Array() {
		day.Hours = append(day.Hours, models.HourRange{
			From: h.Get("from").String(),
			To:   h.Get("to").String(),
		})
	}
	return day, nil
}
