package api

import (
	"context"                         // Context for Redis operations
	"net/http"                        // HTTP status codes
	"strconv"                         // String conversion
	"strings"                         // String manipulation
	"suddenlyspaces/internal/domain"  // Importing domain models
	"suddenlyspaces/internal/listing" // Listing query service
	"suddenlyspaces/internal/utils"   // Utility functions
	"time"                            // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
	"gorm.io/gorm/clause"          // GORM clause helpers
)

// PropertyRequest is the payload for creating or fully replacing a property
type PropertyRequest struct {
	Title        string  `json:"title" binding:"required"`                                        // Listing title
	Description  *string `json:"description"`                                                     // Optional description
	Location     string  `json:"location" binding:"required"`                                     // Street address
	City         string  `json:"city" binding:"required"`                                         // City
	RentAmount   float64 `json:"rentAmount" binding:"required,gt=0"`                              // Must be positive
	PropertyType string  `json:"propertyType" binding:"required,oneof=RESIDENTIAL COWORKING SHORT_TERM"` // Property type enum
	LeaseType    string  `json:"leaseType" binding:"required,oneof=MONTHLY YEARLY FLEXIBLE"`      // Lease type enum
	IsAvailable  *bool   `json:"isAvailable"`                                                     // Optional; new listings default to true
}

// SearchResponse is a page of properties with its pagination metadata
type SearchResponse struct {
	Properties []PropertyResponse `json:"properties"` // Page of properties
	Pagination listing.Meta       `json:"pagination"` // Pagination metadata
	Cached     bool               `json:"cached"`     // Indicate response is from cache
}

// ListPropertiesHandler is the public search: available properties matching
// the supplied filters, newest first, paginated
func ListPropertiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Build cache key from all search params
		var keyParts []string // Parts of the cache key
		for _, k := range []string{"city", "minPrice", "maxPrice", "propertyType", "leaseType", "page", "limit"} {
			keyParts = append(keyParts, k+"="+c.DefaultQuery(k, "")) // Append key-value pair
		}
		cacheKey := "properties:search:" + strings.Join(keyParts, ":")
		var cached SearchResponse // Cached page, if any
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			cached.Cached = true         // Indicate response is from cache
			c.JSON(http.StatusOK, cached) // Return cached page
			return
		}
		query := c.Request.URL.Query()                              // Raw query parameters
		filter := listing.ParseFilter(query)                        // Search predicates
		params := listing.ParsePage(query, listing.DefaultSearchLimit) // Pagination controls
		// Only available properties are eligible, regardless of filters
		q := filter.Apply(db.Model(&domain.Property{}).Where("is_available = ?", true))
		var total int64 // Total matching properties
		// Get total count for pagination
		if err := q.Count(&total).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Property search count failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		var props []domain.Property // Slice to hold the page
		// Fetch the page, newest first, with owner summaries
		if err := q.Preload("Owner").
			Order("created_at desc").
			Offset(params.Offset()).
			Limit(params.Limit).
			Find(&props).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Property search failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		resp := SearchResponse{
			Properties: propertyResponses(props), // Page of properties
			Pagination: params.Meta(total),       // Pagination metadata
			Cached:     false,                    // Not from cache
		}
		// Cache the page for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return the page
	}
}

// CreatePropertyHandler persists a new property owned by the caller
func CreatePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req PropertyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return the structured validation response
			abortBinding(c, err)
			return
		}
		// New listings are available unless the payload says otherwise
		isAvailable := true
		if req.IsAvailable != nil {
			isAvailable = *req.IsAvailable
		}
		property := domain.Property{
			OwnerID:      userID.(string),  // Caller becomes the owner
			Title:        req.Title,        // Listing title
			Description:  req.Description,  // Optional description
			Location:     req.Location,     // Street address
			City:         req.City,         // City
			RentAmount:   req.RentAmount,   // Rent amount
			PropertyType: req.PropertyType, // Property type
			LeaseType:    req.LeaseType,    // Lease type
			IsAvailable:  isAvailable,      // Availability flag
		}
		// Attempt to create the property in the database
		if err := db.Create(&property).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"owner_id": userID,      // Owner user ID
				"error":    err.Error(), // Error message
			}).Error("Property creation failed") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Reload with the owner summary for the response
		if err := db.Preload("Owner").First(&property, "id = ?", property.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID, // New property ID
			"owner_id":    userID,      // Owner user ID
			"city":        property.City,
		}).Info("Property created") // Log property creation
		// Invalidate the owner's management-view cache
		invalidateOwnerPages(context.Background(), rdb, property.OwnerID)
		c.JSON(http.StatusCreated, propertyResponse(property)) // Return the created property
	}
}

// UpdatePropertyHandler fully replaces the mutable fields of an owned property
func UpdatePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req PropertyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return the structured validation response
			abortBinding(c, err)
			return
		}
		var property domain.Property // Fetch the property being updated
		if err := db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
			// If the id does not resolve, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Only the owner may edit the property
		if property.OwnerID != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own properties"})
			return
		}
		// Full replace of the mutable fields
		property.Title = req.Title
		property.Description = req.Description
		property.Location = req.Location
		property.City = req.City
		property.RentAmount = req.RentAmount
		property.PropertyType = req.PropertyType
		property.LeaseType = req.LeaseType
		// Availability only changes when the payload supplies it
		if req.IsAvailable != nil {
			property.IsAvailable = *req.IsAvailable
		}
		// Save writes every field, including cleared ones
		if err := db.Save(&property).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"property_id": property.ID, // Property ID
				"owner_id":    userID,      // Owner user ID
				"error":       err.Error(), // Error message
			}).Error("Property update failed") // Log update failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Reload with the owner summary for the response
		if err := db.Preload("Owner").First(&property, "id = ?", property.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Invalidate the owner's management-view cache
		invalidateOwnerPages(context.Background(), rdb, property.OwnerID)
		c.JSON(http.StatusOK, propertyResponse(property)) // Return the updated property
	}
}

// DeletePropertyHandler removes an owned property and its applications
func DeletePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var property domain.Property // Fetch the property being deleted
		if err := db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
			// If the id does not resolve, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Only the owner may delete the property
		if property.OwnerID != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own properties"})
			return
		}
		// Delete the property together with its applications
		if err := db.Select(clause.Associations).Delete(&property).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"property_id": property.ID, // Property ID
				"owner_id":    userID,      // Owner user ID
				"error":       err.Error(), // Error message
			}).Error("Property deletion failed") // Log deletion failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID, // Deleted property ID
			"owner_id":    userID,      // Owner user ID
		}).Info("Property deleted") // Log property deletion
		// Invalidate the owner's management-view cache
		invalidateOwnerPages(context.Background(), rdb, property.OwnerID)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
	}
}

// MyPropertiesHandler lists the caller's properties, regardless of
// availability, with their applications embedded
func MyPropertiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ownerID := userID.(string)                                           // Caller's user ID
		params := listing.ParsePage(c.Request.URL.Query(), listing.DefaultOwnerLimit) // Pagination controls
		cacheKey := myPropertiesKey(ownerID, params.Page, params.Limit)      // Per-owner cache key
		ctx := context.Background()                                          // Context for Redis operations
		var cached SearchResponse                                            // Cached page, if any
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			cached.Cached = true          // Indicate response is from cache
			c.JSON(http.StatusOK, cached) // Return cached page
			return
		}
		var total int64 // Total properties owned by the caller
		// Get total count for pagination
		if err := db.Model(&domain.Property{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Owner property count failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		var props []domain.Property // Slice to hold the page
		// Fetch the page with owner summary and applications with tenant summaries
		if err := db.Where("owner_id = ?", ownerID).
			Preload("Owner").
			Preload("Applications").
			Preload("Applications.Tenant").
			Order("created_at desc").
			Offset(params.Offset()).
			Limit(params.Limit).
			Find(&props).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Owner property fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Map the page including embedded applications
		out := make([]PropertyResponse, 0, len(props))
		for _, p := range props {
			out = append(out, propertyWithApplications(p))
		}
		resp := SearchResponse{
			Properties: out,                // Page of properties
			Pagination: params.Meta(total), // Pagination metadata
			Cached:     false,              // Not from cache
		}
		// Cache the page for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return the page
	}
}

// myPropertiesKey builds the cache key for one page of an owner's management view
func myPropertiesKey(ownerID string, page, size int) string {
	return "myproperties:owner:" + ownerID + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(size)
}

// invalidateOwnerPages drops the owner's cached management-view pages
// (simple version: delete the first 5 pages at the default size)
func invalidateOwnerPages(ctx context.Context, rdb *redis.Client, ownerID string) {
	for i := 1; i <= 5; i++ {
		// Delete cache entries for this owner
		_ = utils.DeleteCache(ctx, rdb, myPropertiesKey(ownerID, i, listing.DefaultOwnerLimit))
	}
}
