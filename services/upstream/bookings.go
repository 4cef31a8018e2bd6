package upstream

import (
	"context"
	"fmt"
	"net/http"

	"roomview/models"
	"roomview/services/token"

	"github.com/tidwall/gjson"
)

// BookingSource yields the bookings recorded against the room for a
// calendar date.
type BookingSource interface {
	Bookings(ctx context.Context, date string) ([]models.BookingInterval, error)
}

// BookingsClient reads room bookings from the tenant API. Interval
// fields vary between installations ("fromDate"/"from", "toDate"/"to"),
// so both spellings are accepted.
type BookingsClient struct {
	HTTP    *http.Client
	Tokens  token.TokenProvider
	BaseURL string
	RoomID  string
}

func (c *BookingsClient) Bookings(ctx context.Context, date string) ([]models.BookingInterval, error) {
	url := fmt.Sprintf("%s/api/rooms/%s/bookings?date=%s", c.BaseURL, c.RoomID, date)

	body, err := getJSON(ctx, c.HTTP, c.Tokens, url)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("bookings response from %s is not valid JSON", url)
	}

	// An error envelope (e.g. {"message": "..."}) can arrive with a 200
	// status; anything but an array of objects is a malformed payload
	// and must fail the request, never read as "no bookings".
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("bookings response from %s is not a JSON array", url)
	}

	var bookings []models.BookingInterval
	for _, item := range parsed.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("bookings response from %s contains a non-object entry", url)
		}
		from := item.Get("fromDate").String()
		if from == "" {
			from = item.Get("from").String()
		}
		to := item.Get("toDate").String()
		if to == "" {
			to = item.Get("to").String()
		}
		bookings = append(bookings, models.BookingInterval{
			From:   from,
			To:     to,
			Status: item.Get("status").String(),
		})
	}
	return bookings, nil
}
