package api

import (
	"net/http"                       // HTTP status codes
	"strconv"                        // String conversion
	"suddenlyspaces/internal/demo"   // Synthetic display data
	"suddenlyspaces/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ListTenantsHandler returns all tenant users enriched with deterministic
// demo display fields (phone, activity, counts). The extra fields are
// fictional and never persisted.
func ListTenantsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tenants []domain.User // Slice to hold tenant users
		// Fetch tenants, newest first
		if err := db.Where("role = ?", domain.RoleTenant).Order("created_at desc").Find(&tenants).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Tenant fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		// Combine real records with the derived demo fields
		data := make([]TenantResponse, 0, len(tenants))
		for i, t := range tenants {
			name := t.Name
			// Fall back to a positional placeholder for unnamed accounts
			if name == "" {
				name = "Tenant " + strconv.Itoa(i+1)
			}
			data = append(data, TenantResponse{
				ID:            t.ID,                   // User ID
				Name:          name,                   // Display name
				Email:         t.Email,                // Email address
				TenantProfile: demo.ProfileFor(t.ID),  // Deterministic demo fields
			})
		}
		// Return the enriched list
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
	}
}
