package api

import (
	"suddenlyspaces/internal/domain"     // Importing domain models
	"suddenlyspaces/internal/middleware" // Auth and role middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every route onto a Gin engine
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Auth routes
	r.POST("/api/auth/register", RegisterHandler(db))        // Registration endpoint
	r.POST("/api/auth/login", LoginHandler(db, jwtSecret))   // Login endpoint

	// Public routes
	r.GET("/api/properties", ListPropertiesHandler(db, rdb)) // Public property search
	r.GET("/api/risk-score", RiskScoreHandler())             // Simulated risk score
	r.GET("/api/tenants", ListTenantsHandler(db))            // Tenant list with demo fields

	// Authenticated routes (protected by JWT)
	authed := r.Group("/api", middleware.JWTAuthMiddleware(jwtSecret))
	// Owner-only property management
	authed.GET("/properties/my-properties", middleware.RequireRole(db, domain.RoleOwner), MyPropertiesHandler(db, rdb))
	authed.POST("/properties", middleware.RequireRole(db, domain.RoleOwner), CreatePropertyHandler(db, rdb))
	authed.PATCH("/properties/:id", middleware.RequireRole(db, domain.RoleOwner), UpdatePropertyHandler(db, rdb))
	authed.DELETE("/properties/:id", DeletePropertyHandler(db, rdb)) // Ownership checked in the handler
	// Applications
	authed.GET("/applications", ListApplicationsHandler(db)) // Role-dependent view
	authed.POST("/applications", middleware.RequireRole(db, domain.RoleTenant), CreateApplicationHandler(db, rdb))
	authed.PATCH("/applications/:id", UpdateApplicationStatusHandler(db, rdb)) // Ownership checked in the handler

	return r
}
