package handlers

import (
	"net/http"

	"roomview/services/availability"
	"roomview/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability engine to the kiosk
// display.
type AvailabilityHandler struct {
	Engine availability.AvailabilityService
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetTodayAvailability returns today's slot grid with per-slot occupancy.
func (h *AvailabilityHandler) GetTodayAvailability(c *gin.Context) {
	result, err := h.Engine.TodayAvailability(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to compute availability", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
