package api

import (
	"strconv"

	"crypto_portfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountService is the single entry point the controllers depend on.
// Satisfied by service.UserService.
type AccountService interface {
	Register(name, email, password string) (*domain.User, error)
	Login(email, password string) (string, error)
	GetAllUsers() ([]domain.User, error)
	GetByID(id uint) (*domain.User, error)
	Delete(id uint) error
	GetPortfolio(userID uint) ([]domain.PortfolioEntry, error)
	AddCryptoToPortfolio(userID uint, symbol string, quantity, averageBuyPrice decimal.Decimal) error
	GetWalletTransactions(userID uint) ([]domain.WalletTransaction, error)
	CreateWalletTransaction(userID uint, txType string, amount decimal.Decimal, status string) error
	GetFavorites(userID uint) ([]domain.Favorite, error)
	AddFavorite(userID uint, symbol string) error
	RemoveFavorite(userID uint, symbol string) error
	ClearFavorites(userID uint) error
}

// pathID parses the :id route parameter. The bool reports validity.
func pathID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
