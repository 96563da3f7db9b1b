package handlers

import (
	"net/http"

	"dentora/services/appointment"
	"dentora/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the staff scheduler.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// respondValidation maps a scheduling rejection to 409 with its code and
// the conflicting bookings, or falls through to nil for other errors.
func respondValidation(c *gin.Context, err error) bool {
	verr, ok := scheduling.AsValidation(err)
	if !ok {
		return false
	}
	c.JSON(http.StatusConflict, gin.H{
		"error":       verr.Message,
		"code":        verr.Code,
		"conflicting": verr.Conflicting,
	})
	return true
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcomes, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		h.Logger.Error("Create appointment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"outcomes": outcomes})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")
	var req appointment.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *AppointmentHandler) DayCalendar(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	appts, err := h.Service.DayCalendar(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load calendar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}

func (h *AppointmentHandler) PractitionerDay(c *gin.Context) {
	practitionerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	appts, err := h.Service.PractitionerDay(c.Request.Context(), practitionerID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load calendar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}

func (h *AppointmentHandler) DashboardStats(c *gin.Context) {
	stats, err := h.Service.DashboardStats(c.Request.Context())
	if err != nil {
		h.Logger.Error("DashboardStats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
