package handlers

import (
	"net/http"

	"dentora/services/staff"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves staff sign-in and account management.
type AuthHandler struct {
	Service staff.StaffService
}

func NewAuthHandler(svc staff.StaffService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Service.Register(c.Request.Context(), input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	staffID := c.GetString("staffID")
	if err := h.Service.RevokeToken(c.Request.Context(), staffID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
