package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nailbar/config"
	"nailbar/cron"
	"nailbar/database"
	adminRepoPkg "nailbar/database/repository/admin"
	appointmentRepoPkg "nailbar/database/repository/appointment"
	calendarRepoPkg "nailbar/database/repository/calendar"
	serviceRepoPkg "nailbar/database/repository/service"
	"nailbar/handlers"
	"nailbar/routes"
	adminService "nailbar/services/admin"
	"nailbar/services/booking"
	"nailbar/services/calendar"
	"nailbar/services/catalogue"
	"nailbar/services/notification"
	"nailbar/services/tasks"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitBookingCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	db := database.DB()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo(db)
	calRepo := calendarRepoPkg.NewMongoCalendarRepo(db)
	svcRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	admRepo := adminRepoPkg.NewMongoAdminRepo(db)

	ctx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}
	cancelInit()

	// services.
	notifier := notification.NewResendNotificationService()
	reminders := tasks.NewAsynqReminderScheduler()

	calendarService := &calendar.DefaultCalendarService{Repo: calRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:         apptRepo,
		ServicesRepo: svcRepo,
		Calendar:     calendarService,
		Notifier:     notifier,
		Reminders:    reminders,
	}
	catalogueService := &catalogue.DefaultCatalogueService{Repo: svcRepo}
	adminSvc := &adminService.DefaultAdminService{Repo: admRepo}

	// Background workers.
	cron.InitReminderWorker(apptRepo, notifier)
	utils.StartHealthMonitor(utils.GetBookingCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService),
		Calendar: handlers.NewCalendarHandler(calendarService),
		Services: handlers.NewServiceHandler(catalogueService),
		Admin:    handlers.NewAdminHandler(adminSvc, bookingService, apptRepo),
		Payments: handlers.NewPaymentHandler(),
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	database.CloseDB(shutdownCtx)

	logger.Sugar().Info("main: server stopped gracefully")
}
