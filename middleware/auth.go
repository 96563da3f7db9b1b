package middleware

import (
	"net/http"
	"strings"

	staffRepo "dentora/database/repository/staff"
	"dentora/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware protects the staff portal. The token must be
// valid and its hash must still match the one stored for the account,
// so server-side sign-out revokes tokens immediately.
func JWTAuthStaffMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		user, err := repo.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff account not found"})
			return
		}

		c.Set("staffID", user.ID)
		c.Set("staffRole", user.Role)
		c.Next()
	}
}
