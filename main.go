package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentora/config"
	"dentora/cron"
	"dentora/database"
	appointmentRepoPkg "dentora/database/repository/appointment"
	patientRepoPkg "dentora/database/repository/patient"
	practitionerRepoPkg "dentora/database/repository/practitioner"
	staffRepoPkg "dentora/database/repository/staff"
	"dentora/handlers"
	"dentora/middleware"
	"dentora/routes"
	"dentora/services/appointment"
	"dentora/services/booking"
	"dentora/services/notification"
	"dentora/services/patient"
	"dentora/services/practitioner"
	"dentora/services/scheduling"
	"dentora/services/staff"
	"dentora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	practRepo := practitionerRepoPkg.NewMongoPractitionerRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Appointments:   apptRepo,
		Leave:          practRepo,
		MaxMonthsAhead: config.AppConfig.MaxBookingMonthsAhead,
	}

	notificationService := notification.NewDefaultNotificationService()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultBookingSessionService{
		AppointmentRepo:  apptRepo,
		PractitionerRepo: practRepo,
		Engine:           schedulingEngine,
		NotificationSvc:  notificationService,
		Cache:            utils.GetCacheClient(),
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:             apptRepo,
		PractitionerRepo: practRepo,
		Engine:           schedulingEngine,
		NotificationSvc:  notificationService,
	}
	practitionerService := &practitioner.DefaultPractitionerService{Repo: practRepo}
	patientService := &patient.DefaultPatientService{Repo: patRepo, AppointmentRepo: apptRepo}
	staffService := &staff.DefaultStaffService{Repo: stfRepo, AuthCache: utils.GetAuthCacheClient()}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, practitionerService, logger)
	authHandler := handlers.NewAuthHandler(staffService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	practitionerHandler := handlers.NewPractitionerHandler(practitionerService)
	patientHandler := handlers.NewPatientHandler(patientService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: stfRepo,

		// Public booking wizard endpoints.
		StartBookingSession:    bookingHandler.StartSession,
		GetAvailabilityHandler: bookingHandler.GetAvailability,
		ConfirmBookingHandler:  bookingHandler.ConfirmBooking,
		CancelSessionHandler:   bookingHandler.CancelSession,
		ListPractitioners:      bookingHandler.ListPractitioners,

		// Staff auth endpoints.
		StaffLoginHandler:    authHandler.Login,
		StaffRegisterHandler: authHandler.Register,
		StaffLogoutHandler:   authHandler.Logout,

		// Appointment endpoints.
		CreateAppointmentHandler:     appointmentHandler.Create,
		RescheduleAppointmentHandler: appointmentHandler.Reschedule,
		UpdateStatusHandler:          appointmentHandler.UpdateStatus,
		CancelAppointmentHandler:     appointmentHandler.Cancel,
		DayCalendarHandler:           appointmentHandler.DayCalendar,
		PractitionerDayHandler:       appointmentHandler.PractitionerDay,
		DashboardStatsHandler:        appointmentHandler.DashboardStats,

		// Practitioner endpoints.
		CreatePractitionerHandler: practitionerHandler.Create,
		GetPractitionerHandler:    practitionerHandler.GetByID,
		UpdatePractitionerHandler: practitionerHandler.Update,
		DeletePractitionerHandler: practitionerHandler.Delete,
		AddLeaveDayHandler:        practitionerHandler.AddLeaveDay,
		RemoveLeaveDayHandler:     practitionerHandler.RemoveLeaveDay,

		// Patient endpoints.
		CreatePatientHandler:  patientHandler.Create,
		GetPatientHandler:     patientHandler.GetByID,
		SearchPatientsHandler: patientHandler.Search,
		UpdatePatientHandler:  patientHandler.Update,
		DeletePatientHandler:  patientHandler.Delete,
		PatientHistoryHandler: patientHandler.History,
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

	logger.Sugar().Info("main: server stopped gracefully")
}
