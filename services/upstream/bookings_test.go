package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingsClient_AcceptsBothFieldSpellings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/room-7/bookings", r.URL.Path)
		assert.Equal(t, "2025-02-25", r.URL.Query().Get("date"))
		fmt.Fprint(w, `[
  {"fromDate": "2025-02-25 10:00", "toDate": "2025-02-25 11:00", "status": "confirmed"},
  {"from": "2025-02-25 14:00", "to": "2025-02-25 15:00", "status": "canceled"}
]`)
	}))
	defer srv.Close()

	c := &BookingsClient{HTTP: srv.Client(), Tokens: staticTokens("tok"), BaseURL: srv.URL, RoomID: "room-7"}

	bookings, err := c.Bookings(context.Background(), "2025-02-25")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, models.BookingInterval{From: "2025-02-25 10:00", To: "2025-02-25 11:00", Status: "confirmed"}, bookings[0])
	assert.Equal(t, models.BookingInterval{From: "2025-02-25 14:00", To: "2025-02-25 15:00", Status: "canceled"}, bookings[1])
}

func TestBookingsClient_EmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := &BookingsClient{HTTP: srv.Client(), Tokens: staticTokens("tok"), BaseURL: srv.URL, RoomID: "room-7"}

	bookings, err := c.Bookings(context.Background(), "2025-02-25")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingsClient_ErrorEnvelopeBodyIsError(t *testing.T) {
	// Some installations return an error object with a 200 status; that
	// must surface as a failure, not as an empty booking list.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message": "quota exceeded"}`)
	}))
	defer srv.Close()

	c := &BookingsClient{HTTP: srv.Client(), Tokens: staticTokens("tok"), BaseURL: srv.URL, RoomID: "room-7"}

	_, err := c.Bookings(context.Background(), "2025-02-25")
	assert.Error(t, err)
}

func TestBookingsClient_NonObjectEntriesAreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[1, 2, 3]`)
	}))
	defer srv.Close()

	c := &BookingsClient{HTTP: srv.Client(), Tokens: staticTokens("tok"), BaseURL: srv.URL, RoomID: "room-7"}

	_, err := c.Bookings(context.Background(), "2025-02-25")
	assert.Error(t, err)
}

func TestBookingsClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer srv.Close()

	c := &BookingsClient{HTTP: srv.Client(), Tokens: staticTokens("tok"), BaseURL: srv.URL, RoomID: "room-7"}

	_, err := c.Bookings(context.Background(), "2025-02-25")
	assert.Error(t, err)
}
