package handlers

import (
	"net/http"
	"regexp"
	"time"

	"gasthaus/services/reservation"
	"gasthaus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AvailabilityHandler serves the public read endpoints.
type AvailabilityHandler struct {
	Svc    reservation.AvailabilityService
	Logger *zap.Logger
}

func NewAvailabilityHandler(svc reservation.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: logger}
}

// GetAvailabilityHandler answers GET /api/availability?date=YYYY-MM-DD&area=KEY.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	area := c.Query("area")

	if !datePattern.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "not a valid calendar date")
		return
	}
	if !reservation.IsKnownArea(area) {
		utils.JSONError(c, http.StatusBadRequest, "invalid area", "unknown seating area")
		return
	}

	result, err := h.Svc.GetAvailability(c.Request.Context(), date, area)
	if err != nil {
		h.Logger.Error("availability query failed", zap.String("date", date), zap.String("area", area), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability unavailable", "please try again later")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetOpeningHoursHandler answers GET /api/opening-hours.
func (h *AvailabilityHandler) GetOpeningHoursHandler(c *gin.Context) {
	cfg, err := h.Svc.GetOpeningHours(c.Request.Context())
	if err != nil {
		h.Logger.Error("opening hours query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "opening hours unavailable", "please try again later")
		return
	}
	c.JSON(http.StatusOK, cfg)
}
