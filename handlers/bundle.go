package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Public endpoints.
	GetAvailabilityHandler   gin.HandlerFunc
	GetOpeningHoursHandler   gin.HandlerFunc
	CreateReservationHandler gin.HandlerFunc

	// Admin endpoints.
	AdminGetOpeningHoursHandler    gin.HandlerFunc
	AdminSaveOpeningHoursHandler   gin.HandlerFunc
	AdminListReservationsHandler   gin.HandlerFunc
	AdminSearchReservationsHandler gin.HandlerFunc
	AdminUpdateReservationHandler  gin.HandlerFunc
	AdminDeleteReservationHandler  gin.HandlerFunc
}
