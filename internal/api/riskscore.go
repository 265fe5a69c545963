package api

import (
	"net/http"                     // HTTP status codes
	"suddenlyspaces/internal/demo" // Simulated risk scores

	"github.com/gin-gonic/gin" // Gin web framework
)

// RiskScoreHandler returns a fresh simulated risk score. The optional
// tenantId parameter is echoed back and never used in computation.
func RiskScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tenantID any // Echoed back as null when absent
		if s := c.Query("tenantId"); s != "" {
			tenantID = s // Echo the supplied identifier
		}
		// Return a uniformly random score in [0, 100]
		c.JSON(http.StatusOK, gin.H{
			"tenantId":  tenantID,         // Echoed identifier or null
			"riskScore": demo.RiskScore(), // Simulated score
		})
	}
}
