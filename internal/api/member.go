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

// MemberRequest is the body of add and update member calls.
// Required fields are checked by the banking service so every problem is reported at once.
type MemberRequest struct {
	GivenName     string `json:"givenName"`     // First name
	Surname       string `json:"surname"`       // Last name
	InstitutionID int64  `json:"institutionId"` // Owning institution
}

// ListMembersHandler returns every member
func ListMembersHandler(svc *banking.Service, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Member
		if found, err := utils.GetCache(ctx, rdb, utils.MembersKey, &cached); err == nil && found {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, cached)
			return
		}
		result := svc.GetAllMembers(ctx)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.MembersKey, result.Value, ttl)
		c.JSON(http.StatusOK, result.Value)
	}
}

// GetMemberHandler returns one member
func GetMemberHandler(svc *banking.Service, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		var cached domain.Member
		if found, err := utils.GetCache(ctx, rdb, utils.MemberKey(id), &cached); err == nil && found {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, cached)
			return
		}
		result := svc.GetMember(ctx, id)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.MemberKey(id), result.Value, ttl)
		c.JSON(http.StatusOK, result.Value)
	}
}

// MemberAccountsHandler returns the accounts of one member. Balances move
// with every transfer, so this response is never cached.
func MemberAccountsHandler(svc *banking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		result := svc.GetMemberAccounts(c.Request.Context(), id)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		c.JSON(http.StatusOK, result.Value)
	}
}

// AddMemberHandler creates a member along with its opening account
func AddMemberHandler(svc *banking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MemberRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := svc.AddMember(c.Request.Context(), domain.Member{
			GivenName:     req.GivenName,
			Surname:       req.Surname,
			InstitutionID: req.InstitutionID,
		})
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MembersKey) // Invalidate the list
		c.JSON(http.StatusCreated, result.Value)
	}
}

// UpdateMemberHandler replaces a member's fields. The id in the path wins
// over anything in the body.
func UpdateMemberHandler(svc *banking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req MemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := svc.UpdateMember(c.Request.Context(), domain.Member{
			MemberID:      id,
			GivenName:     req.GivenName,
			Surname:       req.Surname,
			InstitutionID: req.InstitutionID,
		})
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MembersKey, utils.MemberKey(id))
		c.Status(http.StatusAccepted)
	}
}

// DeleteMemberHandler removes a member and, through the store, its accounts
func DeleteMemberHandler(svc *banking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		result := svc.DeleteMember(c.Request.Context(), id)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MembersKey, utils.MemberKey(id))
		c.Status(http.StatusAccepted)
	}
}
