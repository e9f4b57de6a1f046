package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teusdrz/firemoto/config"
	"github.com/teusdrz/firemoto/database"
	bookingRepo "github.com/teusdrz/firemoto/database/repository/booking"
	contactRepo "github.com/teusdrz/firemoto/database/repository/contact"
	statusRepo "github.com/teusdrz/firemoto/database/repository/status"
	"github.com/teusdrz/firemoto/handlers"
	"github.com/teusdrz/firemoto/middleware"
	"github.com/teusdrz/firemoto/routes"
	"github.com/teusdrz/firemoto/services/booking"
	"github.com/teusdrz/firemoto/services/contact"
	"github.com/teusdrz/firemoto/services/notification"
	"github.com/teusdrz/firemoto/services/status"
	"github.com/teusdrz/firemoto/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(context.Background(), config.AppConfig.MongoURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DBName)
	utils.StartHealthMonitor(client)

	// Create the Gin router.
	utils.RegisterValidatorTagNames()
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	statuses := statusRepo.NewMongoStatusRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	contacts := contactRepo.NewMongoContactRepo(db)

	// services.
	notifier := notification.NewResendNotificationService(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.SenderEmail,
		config.AppConfig.NotificationEmail,
	)

	statusService := &status.DefaultStatusService{Repo: statuses}
	bookingService := &booking.DefaultBookingService{Repo: bookings, Notifier: notifier}
	contactService := &contact.DefaultContactService{Repo: contacts}

	statusHandler := handlers.NewStatusHandler(statusService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateStatusCheckHandler: statusHandler.CreateStatusCheckHandler,
		ListStatusChecksHandler:  statusHandler.ListStatusChecksHandler,

		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,

		CreateContactHandler: contactHandler.CreateContactHandler,
		ListContactsHandler:  contactHandler.ListContactsHandler,

		ListServicesHandler: handlers.ListServicesHandler,
		RootHandler:         handlers.RootHandler,
		HealthHandler:       handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
	if err := database.Disconnect(client); err != nil {
		logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
