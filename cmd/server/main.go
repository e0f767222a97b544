package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging
	"time"

	"crypto_portfolio/internal/api"        // HTTP handlers
	"crypto_portfolio/internal/config"     // Configuration
	"crypto_portfolio/internal/middleware" // JWT middleware
	"crypto_portfolio/internal/repository" // Account store
	"crypto_portfolio/internal/service"    // Account service

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration, fatal if JWT_SECRET is missing

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Bound the connection pool; once exhausted, calls queue until a
	// connection frees.
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to access DB pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire store and service
	store := repository.NewUserRepository(db)
	svc := service.NewUserService(store, cfg.JWTSecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	users := r.Group("/api/v1/users")

	// Registration and login are open
	users.POST("/register", api.RegisterHandler(svc))
	users.POST("/login", api.LoginHandler(svc))

	// Everything else requires a valid bearer token
	authed := users.Group("", middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("", api.ListUsersHandler(svc))
	authed.GET("/:id", api.GetUserHandler(svc))
	authed.DELETE("/:id", api.DeleteUserHandler(svc))

	// Portfolio routes
	authed.GET("/:id/portfolio", api.GetPortfolioHandler(svc, redisClient))
	authed.POST("/:id/portfolio", api.AddPortfolioHandler(svc, redisClient))

	// Favorites routes
	authed.GET("/:id/favorites", api.GetFavoritesHandler(svc, redisClient))
	authed.POST("/:id/favorites", api.AddFavoriteHandler(svc, redisClient))
	authed.DELETE("/:id/favorites/:cryptoSymbol", api.RemoveFavoriteHandler(svc, redisClient))
	authed.DELETE("/:id/favorites", api.ClearFavoritesHandler(svc, redisClient))

	// Wallet transaction routes
	authed.GET("/:id/wallet-transactions", api.GetTransactionsHandler(svc, redisClient))
	authed.POST("/:id/wallet-transactions", api.CreateTransactionHandler(svc, redisClient))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
