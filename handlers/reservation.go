package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"gasthaus/middleware"
	"gasthaus/models"
	"gasthaus/services/hours"
	"gasthaus/services/pii"
	"gasthaus/services/reservation"
	"gasthaus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves reservation creation.
type ReservationHandler struct {
	Svc    reservation.Service
	Logger *zap.Logger
}

func NewReservationHandler(svc reservation.Service, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// CreateReservationHandler answers POST /api/reservations. The requester
// identity is the forwarded user id when present, otherwise the client IP.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var input struct {
		models.ReservationInput
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	identity := input.UserID
	if identity == "" {
		identity = middleware.GetClientIP(c)
	}

	id, err := h.Svc.Create(c.Request.Context(), &input.ReservationInput, identity)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservationId": id})
}

func (h *ReservationHandler) respondCreateError(c *gin.Context, err error) {
	var (
		validationErr *reservation.ValidationError
		capacityErr   *reservation.CapacityExceededError
		rateErr       *reservation.RateLimitedError
		configErr     *hours.ConfigUnavailableError
		cryptoErr     *pii.CryptoError
	)
	switch {
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     fmt.Sprintf("only %d seats left at this time", capacityErr.Remaining),
			"remaining": capacityErr.Remaining,
		})
	case errors.As(err, &validationErr):
		resp := gin.H{"error": validationErr.Message, "code": validationErr.Code}
		if len(validationErr.Issues) > 0 {
			resp["issues"] = validationErr.Issues
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.As(err, &rateErr):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
	case errors.As(err, &configErr):
		h.Logger.Error("reservation rejected, opening hours unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reservation failed", "please try again later")
	case errors.As(err, &cryptoErr):
		h.Logger.Error("reservation rejected, crypto failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reservation failed", "please try again later")
	default:
		h.Logger.Error("reservation creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reservation failed", "please try again later")
	}
}
