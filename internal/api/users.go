package api

import (
	"errors"
	"net/http"

	"crypto_portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListUsersHandler returns every user in insertion order.
func ListUsersHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.GetAllUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": users})
	}
}

// GetUserHandler returns one user by id. A missing user is 404, never
// conflated with a backend failure.
func GetUserHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		user, err := svc.GetByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": user})
	}
}

// DeleteUserHandler removes a user. Deleting an id that never existed
// still reports success; that parity is deliberate.
func DeleteUserHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if err := svc.Delete(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error deleting user"})
			return
		}
		logrus.WithField("user_id", id).Info("User deleted")
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
