package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"banking_api/internal/domain" // Result envelope

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusFor maps a failed result onto an HTTP status
func statusFor(kind domain.FailureKind) int {
	switch kind {
	case domain.KindValidation, domain.KindBusiness:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeFailure renders a failed result as an error body
func writeFailure[T any](c *gin.Context, r domain.Result[T]) {
	c.JSON(statusFor(r.Kind), gin.H{"error": r.Message})
}

// pathID parses the :id path parameter; a malformed id aborts with 400
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
