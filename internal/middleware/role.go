package middleware

import (
	"net/http"                     // HTTP status codes
	"suddenlyspaces/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RequireRole checks the user's role from the database on each request
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	// Message used for both the missing-user and wrong-role cases
	msg := "Owner access required"
	if role == domain.RoleTenant {
		msg = "Tenant access required"
	}
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}
		// Check if user holds the required role
		if user.Role != role {
			// If not, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}
		c.Set("userRole", user.Role) // Store the role for handlers that branch on it
		c.Next()                     // Proceed to the next handler
	}
}
