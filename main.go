package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gasthaus/config"
	"gasthaus/cron"
	"gasthaus/database"
	hoursRepo "gasthaus/database/repository/hours"
	reservationRepo "gasthaus/database/repository/reservation"
	"gasthaus/handlers"
	"gasthaus/middleware"
	"gasthaus/routes"
	"gasthaus/services/hours"
	"gasthaus/services/pii"
	"gasthaus/services/reservation"
	"gasthaus/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	masterKey, err := config.DecodeKey(config.AppConfig.ReservationMasterKey)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid reservation master key: %v", err)
	}
	indexSecret, err := config.DecodeKey(config.AppConfig.ReservationIndexSecret)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid reservation index secret: %v", err)
	}
	vault, err := pii.NewVault(masterKey, indexSecret)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize PII vault: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hoursStore := hoursRepo.NewMongoHoursRepo()
	resStore := reservationRepo.NewMongoReservationRepo()
	if err := resStore.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create reservation indexes: %v", err)
	}

	// services.
	availabilityCache := reservation.NewRedisAvailabilityCache(utils.GetCacheClient())

	hoursService := &hours.DefaultHoursService{
		Repo:  hoursStore,
		Cache: availabilityCache,
	}

	availabilityService := &reservation.DefaultAvailabilityService{
		Hours: hoursService,
		Repo:  resStore,
		Cache: availabilityCache,
	}

	reservationService := &reservation.DefaultReservationService{
		Hours:     hoursService,
		Repo:      resStore,
		Vault:     vault,
		Limiter:   middleware.NewWindowLimiter(),
		RateLimit: config.AppConfig.ReservationRateLimit,
		RateWin:   time.Duration(config.AppConfig.ReservationRateWindowSec) * time.Second,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	adminHandler := handlers.NewAdminHandler(hoursService, reservationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler:   availabilityHandler.GetAvailabilityHandler,
		GetOpeningHoursHandler:   availabilityHandler.GetOpeningHoursHandler,
		CreateReservationHandler: reservationHandler.CreateReservationHandler,

		AdminGetOpeningHoursHandler:    adminHandler.GetOpeningHoursHandler,
		AdminSaveOpeningHoursHandler:   adminHandler.SaveOpeningHoursHandler,
		AdminListReservationsHandler:   adminHandler.ListReservationsHandler,
		AdminSearchReservationsHandler: adminHandler.SearchReservationsHandler,
		AdminUpdateReservationHandler:  adminHandler.UpdateReservationStatusHandler,
		AdminDeleteReservationHandler:  adminHandler.DeleteReservationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background completion sweep.
	cron.InitCompletionWorker(reservationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
