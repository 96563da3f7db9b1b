package handlers

import (
	staffRepoPkg "dentora/database/repository/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepoPkg.StaffRepository

	// Public booking wizard endpoints
	StartBookingSession    gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc
	ListPractitioners      gin.HandlerFunc

	// Staff auth endpoints
	StaffLoginHandler    gin.HandlerFunc
	StaffRegisterHandler gin.HandlerFunc
	StaffLogoutHandler   gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler     gin.HandlerFunc
	RescheduleAppointmentHandler gin.HandlerFunc
	UpdateStatusHandler          gin.HandlerFunc
	CancelAppointmentHandler     gin.HandlerFunc
	DayCalendarHandler           gin.HandlerFunc
	PractitionerDayHandler       gin.HandlerFunc
	DashboardStatsHandler        gin.HandlerFunc

	// Practitioner endpoints
	CreatePractitionerHandler gin.HandlerFunc
	GetPractitionerHandler    gin.HandlerFunc
	UpdatePractitionerHandler gin.HandlerFunc
	DeletePractitionerHandler gin.HandlerFunc
	AddLeaveDayHandler        gin.HandlerFunc
	RemoveLeaveDayHandler     gin.HandlerFunc

	// Patient endpoints
	CreatePatientHandler  gin.HandlerFunc
	GetPatientHandler     gin.HandlerFunc
	SearchPatientsHandler gin.HandlerFunc
	UpdatePatientHandler  gin.HandlerFunc
	DeletePatientHandler  gin.HandlerFunc
	PatientHistoryHandler gin.HandlerFunc
}
