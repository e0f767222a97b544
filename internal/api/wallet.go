package api

import (
	"context"
	"net/http"
	"time"

	"crypto_portfolio/internal/domain"
	"crypto_portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CreateTransactionRequest is the typed wallet-transaction payload.
// Type and status are closed enums, rejected at the boundary.
type CreateTransactionRequest struct {
	Type   string          `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Status string          `json:"status" binding:"required,oneof=pending completed"`
}

// GetTransactionsHandler returns a user's ledger in creation order,
// cached for 60 seconds.
func GetTransactionsHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.TransactionsCacheKey(userID)
		var cached []domain.WalletTransaction
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
			return
		}
		txs, err := svc.GetWalletTransactions(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet transactions"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, txs, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"data": txs, "cached": false})
	}
}

// CreateTransactionHandler appends a ledger row and invalidates the
// cached listing. The ledger is append-only: there is no update or
// delete endpoint.
func CreateTransactionHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var req CreateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := svc.CreateWalletTransaction(userID, req.Type, req.Amount, req.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating wallet transaction"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"type":    req.Type,
			"amount":  req.Amount,
			"status":  req.Status,
		}).Info("Wallet transaction created")
		_ = utils.DeleteCache(context.Background(), rdb, utils.TransactionsCacheKey(userID))
		c.JSON(http.StatusCreated, gin.H{"message": "Wallet transaction created"})
	}
}
