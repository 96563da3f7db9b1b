package routes

import (
	"net/http"
	"time"

	"dentora/handlers"
	"dentora/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/practitioners", hb.ListPractitioners)
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.GET("/session/:sessionID/availability", hb.GetAvailabilityHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterStaffRoutes sets up the staff portal. Everything past login
// requires a valid, unrevoked token.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.StaffLoginHandler)
		api.POST("/register", hb.StaffRegisterHandler)

		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("/logout", hb.StaffLogoutHandler)

		api.GET("/dashboard", hb.DashboardStatsHandler)
		api.GET("/calendar", hb.DayCalendarHandler)

		api.POST("/appointments", hb.CreateAppointmentHandler)
		api.PUT("/appointments/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.PUT("/appointments/:id/status", hb.UpdateStatusHandler)
		api.DELETE("/appointments/:id", hb.CancelAppointmentHandler)

		api.POST("/practitioners", hb.CreatePractitionerHandler)
		api.GET("/practitioners/:id", hb.GetPractitionerHandler)
		api.GET("/practitioners/:id/calendar", hb.PractitionerDayHandler)
		api.PATCH("/practitioners/:id", hb.UpdatePractitionerHandler)
		api.DELETE("/practitioners/:id", hb.DeletePractitionerHandler)
		api.POST("/practitioners/:id/leave", hb.AddLeaveDayHandler)
		api.DELETE("/practitioners/:id/leave/:date", hb.RemoveLeaveDayHandler)

		api.POST("/patients", hb.CreatePatientHandler)
		api.GET("/patients/search", hb.SearchPatientsHandler)
		api.GET("/patients/:id", hb.GetPatientHandler)
		api.GET("/patients/:id/history", hb.PatientHistoryHandler)
		api.PATCH("/patients/:id", hb.UpdatePatientHandler)
		api.DELETE("/patients/:id", hb.DeletePatientHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Dentora"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
}
