package api

import (
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"banking_api/internal/banking" // Banking operations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Deps are the collaborators the HTTP routes need
type Deps struct {
	Service  *banking.Service // Banking operations
	Redis    *redis.Client    // Query cache, nil disables caching
	CacheTTL time.Duration    // Lifetime of cached responses
	Health   func() error     // Readiness probe, nil means always ready
}

// RegisterRoutes mounts the banking API under /api
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		if d.Health != nil {
			if err := d.Health(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")

	// Institution routes
	apiGroup.GET("/institution", ListInstitutionsHandler(d.Service, d.Redis, d.CacheTTL))
	apiGroup.POST("/institution", CreateInstitutionHandler(d.Service, d.Redis))

	// Member routes
	apiGroup.GET("/member", ListMembersHandler(d.Service, d.Redis, d.CacheTTL))
	apiGroup.GET("/member/:id", GetMemberHandler(d.Service, d.Redis, d.CacheTTL))
	apiGroup.GET("/member/:id/accounts", MemberAccountsHandler(d.Service))
	apiGroup.POST("/member", AddMemberHandler(d.Service, d.Redis))
	apiGroup.PUT("/member/:id", UpdateMemberHandler(d.Service, d.Redis))
	apiGroup.DELETE("/member/:id", DeleteMemberHandler(d.Service, d.Redis))

	// Account routes; the static transfer path takes precedence over :id
	apiGroup.PUT("/account/transfer", TransferHandler(d.Service))
	apiGroup.PUT("/account/:id", UpdateAccountBalanceHandler(d.Service))
}
