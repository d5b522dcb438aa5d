package handlers

import (
	"errors"
	"net/http"

	"gasthaus/models"
	"gasthaus/services/hours"
	"gasthaus/services/reservation"
	"gasthaus/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminHandler serves the bearer-token gated admin endpoints.
type AdminHandler struct {
	Hours        hours.Service
	Reservations reservation.Service
	Logger       *zap.Logger
}

func NewAdminHandler(hoursSvc hours.Service, resSvc reservation.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Hours: hoursSvc, Reservations: resSvc, Logger: logger}
}

// GetOpeningHoursHandler answers GET /api/admin/opening-hours. Unlike the
// public read it hard-fails on a store error instead of serving defaults, so
// admins never edit a config that is not the stored one.
func (h *AdminHandler) GetOpeningHoursHandler(c *gin.Context) {
	cfg, err := h.Hours.GetConfigStrict(c.Request.Context())
	if err != nil {
		h.Logger.Error("admin opening hours fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "opening hours unavailable", "please try again later")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveOpeningHoursHandler answers POST /api/admin/opening-hours. The full
// structural schema is re-validated before persisting; a successful write
// invalidates the availability cache.
func (h *AdminHandler) SaveOpeningHoursHandler(c *gin.Context) {
	var cfg models.OpeningHoursConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	issues, err := h.Hours.SaveConfig(c.Request.Context(), &cfg)
	if err != nil {
		h.Logger.Error("opening hours save failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "save failed", "please try again later")
		return
	}
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "opening hours config failed validation", "issues": issues})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// ListReservationsHandler answers GET /api/admin/reservations?from=&to=.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if !datePattern.MatchString(from) || !datePattern.MatchString(to) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "from and to must be YYYY-MM-DD")
		return
	}

	views, err := h.Reservations.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		h.Logger.Error("reservation listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "listing failed", "please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": views})
}

// SearchReservationsHandler answers GET /api/admin/reservations/search?email=.
func (h *AdminHandler) SearchReservationsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "email query parameter is required")
		return
	}

	views, err := h.Reservations.SearchByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("reservation search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "search failed", "please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": views})
}

// UpdateReservationStatusHandler answers PATCH /api/admin/reservations/:id/status.
func (h *AdminHandler) UpdateReservationStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status          string `json:"status"`
		RejectionReason string `json:"rejectionReason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Reservations.UpdateStatus(c.Request.Context(), id, input.Status, input.RejectionReason)
	var validationErr *reservation.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": input.Status})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "code": validationErr.Code})
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "not found", "no reservation with that id")
	default:
		h.Logger.Error("reservation status update failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "update failed", "please try again later")
	}
}

// DeleteReservationHandler answers DELETE /api/admin/reservations/:id.
func (h *AdminHandler) DeleteReservationHandler(c *gin.Context) {
	id := c.Param("id")
	err := h.Reservations.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "not found", "no reservation with that id")
	default:
		h.Logger.Error("reservation delete failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", "please try again later")
	}
}
