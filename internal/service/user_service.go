package service

import (
	"errors"
	"time"

	"crypto_portfolio/internal/domain"
	"crypto_portfolio/internal/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// ErrAuthFailed is returned by Login for both an unknown email and a
// wrong password. The two cases are deliberately indistinguishable so
// that response shape cannot be used to enumerate accounts.
var ErrAuthFailed = errors.New("invalid credentials")

// tokenTTL is the lifetime of an issued bearer token.
const tokenTTL = time.Hour

// AccountStore is the persistence surface the service depends on.
// Satisfied by repository.UserRepository.
type AccountStore interface {
	CreateUser(name, email, hashedPassword string) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id uint) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	DeleteUser(id uint) error
	GetPortfolio(userID uint) ([]domain.PortfolioEntry, error)
	AddPortfolioEntry(userID uint, symbol string, quantity, averageBuyPrice decimal.Decimal) error
	ListWalletTransactions(userID uint) ([]domain.WalletTransaction, error)
	CreateWalletTransaction(userID uint, txType string, amount decimal.Decimal, status string) error
	ListFavorites(userID uint) ([]domain.Favorite, error)
	AddFavorite(userID uint, symbol string) error
	RemoveFavorite(userID uint, symbol string) error
	ClearFavorites(userID uint) error
}

// UserService layers credential hashing and token issuance over the
// store. It is the single entry point consumers depend on: everything
// that is not auth is a pass-through. Stateless; the only temporal
// state is token expiry, enforced by the verifier on each request.
type UserService struct {
	store     AccountStore
	jwtSecret string
}

// NewUserService wires the service to its store and signing secret.
func NewUserService(store AccountStore, jwtSecret string) *UserService {
	return &UserService{store: store, jwtSecret: jwtSecret}
}

// Register hashes the plaintext password with bcrypt (cost 10) and
// creates the user. A store failure, e.g. a duplicate email, surfaces
// unchanged as repository.ErrOperationFailed.
func (s *UserService) Register(name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.store.CreateUser(name, email, string(hash))
}

// Login verifies the credentials and issues a signed bearer token with
// the user id as the sole claim. Unknown email and wrong password both
// return ErrAuthFailed.
func (s *UserService) Login(email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return "", ErrAuthFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrAuthFailed
	}
	return utils.GenerateJWT(user.ID, s.jwtSecret, tokenTTL)
}

// GetAllUsers returns every user in insertion order.
func (s *UserService) GetAllUsers() ([]domain.User, error) {
	return s.store.ListUsers()
}

// GetByID returns a user or repository.ErrNotFound.
func (s *UserService) GetByID(id uint) (*domain.User, error) {
	return s.store.GetUserByID(id)
}

// Delete removes a user. Succeeds even when the id did not exist.
func (s *UserService) Delete(id uint) error {
	return s.store.DeleteUser(id)
}

// GetPortfolio returns the user's portfolio entries.
func (s *UserService) GetPortfolio(userID uint) ([]domain.PortfolioEntry, error) {
	return s.store.GetPortfolio(userID)
}

// AddCryptoToPortfolio appends a portfolio entry.
func (s *UserService) AddCryptoToPortfolio(userID uint, symbol string, quantity, averageBuyPrice decimal.Decimal) error {
	return s.store.AddPortfolioEntry(userID, symbol, quantity, averageBuyPrice)
}

// GetWalletTransactions returns the user's ledger in creation order.
func (s *UserService) GetWalletTransactions(userID uint) ([]domain.WalletTransaction, error) {
	return s.store.ListWalletTransactions(userID)
}

// CreateWalletTransaction appends a ledger row.
func (s *UserService) CreateWalletTransaction(userID uint, txType string, amount decimal.Decimal, status string) error {
	return s.store.CreateWalletTransaction(userID, txType, amount, status)
}

// GetFavorites returns the user's favorite symbols.
func (s *UserService) GetFavorites(userID uint) ([]domain.Favorite, error) {
	return s.store.ListFavorites(userID)
}

// AddFavorite adds a symbol to the user's favorites set.
func (s *UserService) AddFavorite(userID uint, symbol string) error {
	return s.store.AddFavorite(userID, symbol)
}

// RemoveFavorite removes one symbol; removing an absent one succeeds.
func (s *UserService) RemoveFavorite(userID uint, symbol string) error {
	return s.store.RemoveFavorite(userID, symbol)
}

// ClearFavorites empties the user's favorites set.
func (s *UserService) ClearFavorites(userID uint) error {
	return s.store.ClearFavorites(userID)
}
