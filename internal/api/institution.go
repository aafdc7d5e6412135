package api

import (
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"banking_api/internal/banking" // Banking operations
	"banking_api/internal/domain"  // Domain models
	"banking_api/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// InstitutionRequest is the body of a create institution call
type InstitutionRequest struct {
	InstitutionName string `json:"institutionName"` // Name of the new institution
}

// ListInstitutionsHandler returns every institution
func ListInstitutionsHandler(svc *banking.Service, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Institution
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, utils.InstitutionsKey, &cached); err == nil && found {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, cached)
			return
		}
		result := svc.GetAllInstitutions(ctx)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.InstitutionsKey, result.Value, ttl) // Cache the list
		c.JSON(http.StatusOK, result.Value)
	}
}

// CreateInstitutionHandler adds a new institution
func CreateInstitutionHandler(svc *banking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InstitutionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := svc.CreateInstitution(c.Request.Context(), domain.Institution{InstitutionName: req.InstitutionName})
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.InstitutionsKey) // Invalidate the list
		c.JSON(http.StatusCreated, result.Value)
	}
}
