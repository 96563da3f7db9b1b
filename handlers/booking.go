package handlers

import (
	"net/http"
	"strconv"

	"dentora/services/booking"
	"dentora/services/practitioner"
	"dentora/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking wizard.
type BookingHandler struct {
	Service         booking.BookingSessionService
	PractitionerSvc practitioner.PractitionerService
	Logger          *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, practitionerSvc practitioner.PractitionerService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, PractitionerSvc: practitionerSvc, Logger: logger}
}

// StartSession opens a wizard session and returns the bookable practitioners.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Treatment string `json:"treatment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, practitioners, err := h.Service.StartSession(c.Request.Context(), input.Treatment)
	if err != nil {
		h.Logger.Error("StartSession failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":     session.SessionID,
		"practitioners": practitioners,
	})
}

// GetAvailability returns the slot grid for a practitioner and date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	sessionID := c.Param("sessionID")
	practitionerID := c.Query("practitionerId")
	date := c.Query("date")
	if practitionerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "practitionerId and date are required"})
		return
	}
	slotCount, _ := strconv.Atoi(c.DefaultQuery("slots", "1"))

	availability, err := h.Service.GetAvailability(c.Request.Context(), sessionID, practitionerID, date, slotCount)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, availability)
}

// ConfirmBooking finalizes the wizard. Recurring requests return one
// outcome per occurrence.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req booking.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcomes, err := h.Service.ConfirmBooking(c.Request.Context(), sessionID, req)
	if err != nil {
		if verr, ok := scheduling.AsValidation(err); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error":       verr.Message,
				"code":        verr.Code,
				"conflicting": verr.Conflicting,
			})
			return
		}
		h.Logger.Error("ConfirmBooking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking confirmation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

// CancelSession abandons the wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListPractitioners lists active practitioners without a wizard session,
// so the public site can render the team page.
func (h *BookingHandler) ListPractitioners(c *gin.Context) {
	practitioners, err := h.PractitionerSvc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list practitioners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": practitioners})
}
