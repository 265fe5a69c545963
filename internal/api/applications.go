package api

import (
	"context"                        // Context for Redis operations
	"net/http"                       // HTTP status codes
	"suddenlyspaces/internal/demo"   // Simulated risk scores
	"suddenlyspaces/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// ApplyRequest is the payload for a tenant applying to a property
type ApplyRequest struct {
	PropertyID string `json:"propertyId" binding:"required"` // Property being applied to
}

// StatusRequest is the payload for an owner reviewing an application
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"` // New status
}

// ListApplicationsHandler returns the caller's applications: a tenant sees
// their own with property details, an owner sees those made to their properties
// with tenant details
func ListApplicationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user to branch on role
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			// If the user no longer exists, treat the session as invalid
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var apps []domain.Application // Slice to hold applications
		if user.Role == domain.RoleTenant {
			// Tenant view: own applications with the property and its owner
			if err := db.Where("tenant_id = ?", user.ID).
				Preload("Property").
				Preload("Property.Owner").
				Order("created_at desc").
				Find(&apps).Error; err != nil {
				logrus.WithField("error", err.Error()).Error("Application fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			// Map with the property embedded
			out := make([]ApplicationResponse, 0, len(apps))
			for _, a := range apps {
				resp := applicationResponse(a)
				prop := propertyResponse(a.Property) // Owner already preloaded
				resp.Property = &prop
				out = append(out, resp)
			}
			c.JSON(http.StatusOK, out) // Return the tenant's applications
			return
		}
		// Owner view: applications made to the caller's properties
		if err := db.Joins("JOIN properties ON properties.id = applications.property_id").
			Where("properties.owner_id = ?", user.ID).
			Preload("Property").
			Preload("Tenant").
			Order("applications.created_at desc").
			Find(&apps).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Application fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Map with the property and tenant embedded
		out := make([]ApplicationResponse, 0, len(apps))
		for _, a := range apps {
			resp := applicationResponse(a)
			prop := propertyResponse(a.Property) // Property without its owner summary
			resp.Property = &prop
			tenant := userSummary(a.Tenant) // Applying tenant
			resp.Tenant = &tenant
			out = append(out, resp)
		}
		c.JSON(http.StatusOK, out) // Return the applications to review
	}
}

// CreateApplicationHandler records a tenant's application to a property and
// attaches a freshly drawn simulated risk score
func CreateApplicationHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req ApplyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return the structured validation response
			abortBinding(c, err)
			return
		}
		var property domain.Property // Fetch the property being applied to
		if err := db.First(&property, "id = ?", req.PropertyID).Error; err != nil {
			// If the id does not resolve, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Unlisted properties cannot be applied to
		if !property.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Property is not available"})
			return
		}
		// Each tenant may apply to a property once
		var existing domain.Application
		if err := db.Where("property_id = ? AND tenant_id = ?", property.ID, userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied to this property"})
			return
		}
		application := domain.Application{
			PropertyID: property.ID,          // Property applied to
			TenantID:   userID.(string),      // Applying tenant
			Status:     domain.StatusPending, // New applications start pending
			RiskScore:  demo.RiskScore(),     // Simulated score, drawn once at creation
		}
		// Attempt to create the application in the database
		if err := db.Create(&application).Error; err != nil {
			// If creation fails (e.g., concurrent duplicate), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied to this property"})
			return
		}
		// Log successful application
		logrus.WithFields(logrus.Fields{
			"application_id": application.ID,        // New application ID
			"property_id":    property.ID,           // Property applied to
			"tenant_id":      userID,                // Applying tenant
			"risk_score":     application.RiskScore, // Simulated score
		}).Info("Application submitted") // Log application creation
		// The owner's management view embeds applications, so drop its cache
		invalidateOwnerPages(context.Background(), rdb, property.OwnerID)
		c.JSON(http.StatusCreated, applicationResponse(application)) // Return the created application
	}
}

// UpdateApplicationStatusHandler lets the property's owner move an
// application between PENDING, APPROVED and REJECTED
func UpdateApplicationStatusHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req StatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return the structured validation response
			abortBinding(c, err)
			return
		}
		var application domain.Application // Fetch the application with its property
		if err := db.Preload("Property").First(&application, "id = ?", c.Param("id")).Error; err != nil {
			// If the id does not resolve, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		// Only the property's owner may review the application
		if application.Property.OwnerID != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only review applications for your own properties"})
			return
		}
		// Persist the new status
		if err := db.Model(&application).Update("status", req.Status).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"application_id": application.ID, // Application ID
				"owner_id":       userID,         // Reviewing owner
				"error":          err.Error(),    // Error message
			}).Error("Application review failed") // Log review failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Log the review decision
		logrus.WithFields(logrus.Fields{
			"application_id": application.ID, // Application ID
			"owner_id":       userID,         // Reviewing owner
			"status":         req.Status,     // New status
		}).Info("Application reviewed") // Log review success
		// The owner's management view embeds applications, so drop its cache
		invalidateOwnerPages(context.Background(), rdb, application.Property.OwnerID)
		c.JSON(http.StatusOK, applicationResponse(application)) // Return the updated application
	}
}
