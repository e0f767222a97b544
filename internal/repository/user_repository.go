package repository

import (
	"errors"

	"crypto_portfolio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserRepository owns all relational access for users and their
// portfolio, wallet transactions and favorites. Every method issues a
// single statement against the pooled connection; no method opens a
// multi-statement transaction.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository over the given gorm handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// fail logs the backend error with context and collapses it to the
// uniform failure sentinel.
func (r *UserRepository) fail(op string, err error) error {
	logrus.WithFields(logrus.Fields{
		"op":    op,
		"error": err.Error(),
	}).Warn("store operation failed")
	return ErrOperationFailed
}

// CreateUser inserts a user and returns it with the generated id. A
// constraint violation (duplicate email) reports ErrOperationFailed.
func (r *UserRepository) CreateUser(name, email, hashedPassword string) (*domain.User, error) {
	user := domain.User{Name: name, Email: email, Password: hashedPassword}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, r.fail("create_user", err)
	}
	return &user, nil
}

// GetUserByEmail returns the user for the given email or ErrNotFound.
func (r *UserRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, r.fail("get_user_by_email", err)
	}
	return &user, nil
}

// GetUserByID returns the user for the given id or ErrNotFound.
func (r *UserRepository) GetUserByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, r.fail("get_user_by_id", err)
	}
	return &user, nil
}

// ListUsers returns all users in insertion order. Unpaginated.
func (r *UserRepository) ListUsers() ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, r.fail("list_users", err)
	}
	return users, nil
}

// DeleteUser removes the user with the given id. No existence check is
// performed: deleting an absent id succeeds the same as a real one.
// Child rows are removed by the CASCADE constraints.
func (r *UserRepository) DeleteUser(id uint) error {
	if err := r.db.Delete(&domain.User{}, id).Error; err != nil {
		return r.fail("delete_user", err)
	}
	return nil
}

// GetPortfolio returns the user's portfolio entries, empty slice if
// none. A user with no rows is not a not-found condition.
func (r *UserRepository) GetPortfolio(userID uint) ([]domain.PortfolioEntry, error) {
	entries := []domain.PortfolioEntry{}
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, r.fail("get_portfolio", err)
	}
	return entries, nil
}

// AddPortfolioEntry appends a portfolio row. Duplicate symbols are
// allowed and accumulate as separate rows; nothing merges them.
func (r *UserRepository) AddPortfolioEntry(userID uint, symbol string, quantity, averageBuyPrice decimal.Decimal) error {
	entry := domain.PortfolioEntry{
		UserID:          userID,
		CryptoSymbol:    symbol,
		Quantity:        quantity,
		AverageBuyPrice: averageBuyPrice,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return r.fail("add_portfolio_entry", err)
	}
	return nil
}

// ListWalletTransactions returns the user's ledger in creation order.
func (r *UserRepository) ListWalletTransactions(userID uint) ([]domain.WalletTransaction, error) {
	txs := []domain.WalletTransaction{}
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&txs).Error; err != nil {
		return nil, r.fail("list_wallet_transactions", err)
	}
	return txs, nil
}

// CreateWalletTransaction appends a ledger row. There is no update or
// delete path for transactions.
func (r *UserRepository) CreateWalletTransaction(userID uint, txType string, amount decimal.Decimal, status string) error {
	tx := domain.WalletTransaction{
		UserID: userID,
		Type:   txType,
		Amount: amount,
		Status: status,
	}
	if err := r.db.Create(&tx).Error; err != nil {
		return r.fail("create_wallet_transaction", err)
	}
	return nil
}

// ListFavorites returns the user's favorite symbols, empty slice if none.
func (r *UserRepository) ListFavorites(userID uint) ([]domain.Favorite, error) {
	favs := []domain.Favorite{}
	if err := r.db.Where("user_id = ?", userID).Find(&favs).Error; err != nil {
		return nil, r.fail("list_favorites", err)
	}
	return favs, nil
}

// AddFavorite inserts a favorite. The composite unique index rejects a
// duplicate pair, which surfaces as ErrOperationFailed.
func (r *UserRepository) AddFavorite(userID uint, symbol string) error {
	fav := domain.Favorite{UserID: userID, CryptoSymbol: symbol}
	if err := r.db.Create(&fav).Error; err != nil {
		return r.fail("add_favorite", err)
	}
	return nil
}

// RemoveFavorite deletes one favorite pair. Matching zero rows is
// still success: absence of a match is not an error.
func (r *UserRepository) RemoveFavorite(userID uint, symbol string) error {
	if err := r.db.Where("user_id = ? AND crypto_symbol = ?", userID, symbol).Delete(&domain.Favorite{}).Error; err != nil {
		return r.fail("remove_favorite", err)
	}
	return nil
}

// ClearFavorites deletes all favorites for the user, succeeding even
// when there were none.
func (r *UserRepository) ClearFavorites(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&domain.Favorite{}).Error; err != nil {
		return r.fail("clear_favorites", err)
	}
	return nil
}
