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
)

// AddPortfolioRequest is the typed add-to-portfolio payload.
type AddPortfolioRequest struct {
	CryptoSymbol    string          `json:"crypto_symbol" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	AverageBuyPrice decimal.Decimal `json:"average_buy_price" binding:"required"`
}

// GetPortfolioHandler returns a user's portfolio entries, cached for
// 60 seconds. A user with no entries gets an empty list, not an error.
func GetPortfolioHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.PortfolioCacheKey(userID)
		var cached []domain.PortfolioEntry
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
			return
		}
		entries, err := svc.GetPortfolio(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, entries, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"data": entries, "cached": false})
	}
}

// AddPortfolioHandler appends an entry to a user's portfolio and
// invalidates the cached listing. Duplicate symbols accumulate as
// separate rows.
func AddPortfolioHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var req AddPortfolioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := svc.AddCryptoToPortfolio(userID, req.CryptoSymbol, req.Quantity, req.AverageBuyPrice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error adding crypto to portfolio"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.PortfolioCacheKey(userID))
		c.JSON(http.StatusCreated, gin.H{"message": "Crypto added to portfolio"})
	}
}
