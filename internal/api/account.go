package api

import (
	"net/http" // HTTP status codes

	"banking_api/internal/banking" // Banking operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// TransferRequest represents a transfer between two accounts
type TransferRequest struct {
	FromAccountID int64   `json:"fromAccountId" binding:"required"` // Source account
	ToAccountID   int64   `json:"toAccountId" binding:"required"`   // Target account
	Amount        float64 `json:"amount"`                           // Transfer amount, zero is allowed
}

// UpdateAccountBalanceRequest sets an account balance outright
type UpdateAccountBalanceRequest struct {
	NewBalance *float64 `json:"newBalance" binding:"required"` // Zero is a valid balance
}

// TransferHandler moves funds between two accounts
func TransferHandler(svc *banking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransferRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := svc.TransferAmountToAccount(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount)
		// Insufficient funds comes back as a successful result with a false value
		if result.IsSuccess && !result.Value {
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
			return
		}
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "Transfer successful"})
	}
}

// UpdateAccountBalanceHandler overwrites an account balance
func UpdateAccountBalanceHandler(svc *banking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req UpdateAccountBalanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := svc.UpdateAccountBalance(c.Request.Context(), id, *req.NewBalance)
		if !result.IsSuccess {
			writeFailure(c, result)
			return
		}
		c.Status(http.StatusAccepted)
	}
}
