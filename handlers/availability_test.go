package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomview/models"
	"roomview/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	result models.AvailabilityResult
	err    error
}

func (s *stubEngine) TodayAvailability(ctx context.Context) (models.AvailabilityResult, error) {
	return s.result, s.err
}

func performRequest(engine *stubEngine) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAvailabilityHandler(engine, utils.GetLogger())
	router.GET("/api/availability/today", h.GetTodayAvailability)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/today", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetTodayAvailability_OK(t *testing.T) {
	engine := &stubEngine{result: models.AvailabilityResult{
		DateDisplay: "Tuesday, February 25, 2025",
		Grid: []models.DisplaySlot{
			{Label: "9:00 AM", Booked: false},
			{Label: "9:30 AM", Booked: true},
		},
	}}

	w := performRequest(engine)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.AvailabilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, engine.result, got)
}

func TestGetTodayAvailability_EngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("bookings upstream down")}

	w := performRequest(engine)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var got utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Error)
}
