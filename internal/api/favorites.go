package api

import (
	"context"
	"net/http"
	"time"

	"crypto_portfolio/internal/domain"
	"crypto_portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AddFavoriteRequest is the typed add-favorite payload.
type AddFavoriteRequest struct {
	CryptoSymbol string `json:"crypto_symbol" binding:"required"`
}

// GetFavoritesHandler returns a user's favorite symbols, cached for
// 60 seconds.
func GetFavoritesHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.FavoritesCacheKey(userID)
		var cached []domain.Favorite
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
			return
		}
		favs, err := svc.GetFavorites(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, favs, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"data": favs, "cached": false})
	}
}

// AddFavoriteHandler adds a symbol to the favorites set. The storage
// unique index rejects a duplicate pair, reported as a failed add.
func AddFavoriteHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var req AddFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := svc.AddFavorite(userID, req.CryptoSymbol); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error adding to favorites"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.FavoritesCacheKey(userID))
		c.JSON(http.StatusCreated, gin.H{"message": "Crypto added to favorites"})
	}
}

// RemoveFavoriteHandler removes one symbol. Removing a symbol the user
// never favorited still succeeds.
func RemoveFavoriteHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		symbol := c.Param("cryptoSymbol")
		if err := svc.RemoveFavorite(userID, symbol); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error removing from favorites"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.FavoritesCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{"message": "Crypto removed from favorites"})
	}
}

// ClearFavoritesHandler empties the favorites set, succeeding even
// when it was already empty.
func ClearFavoritesHandler(svc AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if err := svc.ClearFavorites(userID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error clearing favorites"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.FavoritesCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{"message": "All favorites cleared"})
	}
}
