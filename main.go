package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomview/config"
	"roomview/handlers"
	"roomview/middleware"
	"roomview/models"
	"roomview/routes"
	"roomview/services/availability"
	"roomview/services/token"
	"roomview/services/upstream"
	"roomview/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}
	slotWidth := time.Duration(config.AppConfig.SlotWidthMins) * time.Minute
	requestTimeout := time.Duration(config.AppConfig.RequestTimeoutSecs) * time.Second

	// Shared outbound client and token provider.
	httpClient := upstream.NewHTTPClient(requestTimeout)
	tokens := token.NewDefaultTokenProvider(
		httpClient,
		config.AppConfig.UpstreamBaseURL,
		config.AppConfig.ClientID,
		config.AppConfig.ClientSecret,
	)

	hoursClient := &upstream.HoursClient{
		HTTP:       httpClient,
		Tokens:     tokens,
		BaseURL:    config.AppConfig.UpstreamBaseURL,
		LocationID: config.AppConfig.LocationID,
	}
	bookingsClient := &upstream.BookingsClient{
		HTTP:    httpClient,
		Tokens:  tokens,
		BaseURL: config.AppConfig.UpstreamBaseURL,
		RoomID:  config.AppConfig.RoomID,
	}

	engine := &availability.DefaultAvailabilityEngine{
		Hours: &availability.HoursResolver{
			Source: hoursClient,
			Fallback: models.HoursWindow{
				OpenTime:  config.AppConfig.FallbackOpenTime,
				CloseTime: config.AppConfig.FallbackCloseTime,
			},
		},
		Bookings: &availability.BookingAggregator{
			Source: bookingsClient,
			Width:  slotWidth,
			Loc:    loc,
		},
		Loc:   loc,
		Width: slotWidth,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(engine, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, availabilityHandler)

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
