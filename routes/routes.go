package routes

import (
	"net/http"
	"time"

	"gasthaus/handlers"
	"gasthaus/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.GET("/opening-hours", hb.GetOpeningHoursHandler)
		api.POST("/reservations", hb.CreateReservationHandler)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/opening-hours", hb.AdminGetOpeningHoursHandler)
		admin.POST("/opening-hours", hb.AdminSaveOpeningHoursHandler)
		admin.GET("/reservations", hb.AdminListReservationsHandler)
		admin.GET("/reservations/search", hb.AdminSearchReservationsHandler)
		admin.PATCH("/reservations/:id/status", hb.AdminUpdateReservationHandler)
		admin.DELETE("/reservations/:id", hb.AdminDeleteReservationHandler)
	}
}
