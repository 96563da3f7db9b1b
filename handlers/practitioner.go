package handlers

import (
	"net/http"

	"dentora/models"
	"dentora/services/practitioner"

	"github.com/gin-gonic/gin"
)

// PractitionerHandler manages the practice's clinicians.
type PractitionerHandler struct {
	Service practitioner.PractitionerService
}

func NewPractitionerHandler(svc practitioner.PractitionerService) *PractitionerHandler {
	return &PractitionerHandler{Service: svc}
}

func (h *PractitionerHandler) Create(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.Create(c.Request.Context(), &p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"practitioner": created})
}

func (h *PractitionerHandler) GetByID(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioner": p})
}

func (h *PractitionerHandler) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *PractitionerHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *PractitionerHandler) AddLeaveDay(c *gin.Context) {
	var input struct {
		Date   string `json:"date" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.AddLeaveDay(c.Request.Context(), c.Param("id"), input.Date, input.Reason); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "leave day added"})
}

func (h *PractitionerHandler) RemoveLeaveDay(c *gin.Context) {
	date := c.Param("date")
	if err := h.Service.RemoveLeaveDay(c.Request.Context(), c.Param("id"), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "leave day removed"})
}
