package service

import (
	"testing"
	"time"

	"crypto_portfolio/internal/domain"
	"crypto_portfolio/internal/repository"
	"crypto_portfolio/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-signing-secret"

// ---- mock store ----

type mockStore struct {
	createUserFn     func(name, email, hashedPassword string) (*domain.User, error)
	getUserByEmailFn func(email string) (*domain.User, error)
	getUserByIDFn    func(id uint) (*domain.User, error)
	listUsersFn      func() ([]domain.User, error)
	deleteUserFn     func(id uint) error
	getPortfolioFn   func(userID uint) ([]domain.PortfolioEntry, error)
	addPortfolioFn   func(userID uint, symbol string, qty, price decimal.Decimal) error
	listTxFn         func(userID uint) ([]domain.WalletTransaction, error)
	createTxFn       func(userID uint, txType string, amount decimal.Decimal, status string) error
	listFavoritesFn  func(userID uint) ([]domain.Favorite, error)
	addFavoriteFn    func(userID uint, symbol string) error
	removeFavoriteFn func(userID uint, symbol string) error
	clearFavoritesFn func(userID uint) error
}

func (m *mockStore) CreateUser(name, email, hashedPassword string) (*domain.User, error) {
	return m.createUserFn(name, email, hashedPassword)
}
func (m *mockStore) GetUserByEmail(email string) (*domain.User, error) {
	return m.getUserByEmailFn(email)
}
func (m *mockStore) GetUserByID(id uint) (*domain.User, error) { return m.getUserByIDFn(id) }
func (m *mockStore) ListUsers() ([]domain.User, error)         { return m.listUsersFn() }
func (m *mockStore) DeleteUser(id uint) error                  { return m.deleteUserFn(id) }
func (m *mockStore) GetPortfolio(userID uint) ([]domain.PortfolioEntry, error) {
	return m.getPortfolioFn(userID)
}
func (m *mockStore) AddPortfolioEntry(userID uint, symbol string, qty, price decimal.Decimal) error {
	return m.addPortfolioFn(userID, symbol, qty, price)
}
func (m *mockStore) ListWalletTransactions(userID uint) ([]domain.WalletTransaction, error) {
	return m.listTxFn(userID)
}
func (m *mockStore) CreateWalletTransaction(userID uint, txType string, amount decimal.Decimal, status string) error {
	return m.createTxFn(userID, txType, amount, status)
}
func (m *mockStore) ListFavorites(userID uint) ([]domain.Favorite, error) {
	return m.listFavoritesFn(userID)
}
func (m *mockStore) AddFavorite(userID uint, symbol string) error {
	return m.addFavoriteFn(userID, symbol)
}
func (m *mockStore) RemoveFavorite(userID uint, symbol string) error {
	return m.removeFavoriteFn(userID, symbol)
}
func (m *mockStore) ClearFavorites(userID uint) error { return m.clearFavoritesFn(userID) }

// ---- tests ----

func TestUserService_Register_HashesPassword(t *testing.T) {
	var storedHash string
	store := &mockStore{
		createUserFn: func(name, email, hashedPassword string) (*domain.User, error) {
			storedHash = hashedPassword
			return &domain.User{ID: 1, Name: name, Email: email, Password: hashedPassword}, nil
		},
	}
	svc := NewUserService(store, testSecret)

	user, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// The plaintext never reaches the store; the stored hash verifies.
	assert.NotEqual(t, "s3cretpass", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("s3cretpass")))
	cost, err := bcrypt.Cost([]byte(storedHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	store := &mockStore{
		createUserFn: func(name, email, hashedPassword string) (*domain.User, error) {
			return nil, repository.ErrOperationFailed
		},
	}
	svc := NewUserService(store, testSecret)

	user, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrOperationFailed)
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	var created *domain.User
	store := &mockStore{
		createUserFn: func(name, email, hashedPassword string) (*domain.User, error) {
			created = &domain.User{ID: 42, Name: name, Email: email, Password: hashedPassword}
			return created, nil
		},
		getUserByEmailFn: func(email string) (*domain.User, error) {
			if created != nil && created.Email == email {
				return created, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewUserService(store, testSecret)

	_, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	token, err := svc.Login("alice@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token carries the user id as its sole custom claim
	// and expires in one hour.
	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	store := &mockStore{
		getUserByEmailFn: func(email string) (*domain.User, error) {
			if email == "known@example.com" {
				return &domain.User{ID: 1, Email: email, Password: string(hash)}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewUserService(store, testSecret)

	_, wrongPassErr := svc.Login("known@example.com", "wrongpass")
	_, unknownErr := svc.Login("unknown@example.com", "rightpass")

	// Wrong password and unknown email produce the identical failure.
	assert.ErrorIs(t, wrongPassErr, ErrAuthFailed)
	assert.Equal(t, wrongPassErr, unknownErr)
}

func TestUserService_Login_TokenRejectedWithWrongSecret(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	store := &mockStore{
		getUserByEmailFn: func(email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, Password: string(hash)}, nil
		},
	}
	svc := NewUserService(store, testSecret)

	token, err := svc.Login("a@example.com", "rightpass")
	require.NoError(t, err)

	_, err = utils.ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestUserService_PassThroughs(t *testing.T) {
	var gotSymbol string
	store := &mockStore{
		deleteUserFn: func(id uint) error { return nil },
		getPortfolioFn: func(userID uint) ([]domain.PortfolioEntry, error) {
			return []domain.PortfolioEntry{}, nil
		},
		removeFavoriteFn: func(userID uint, symbol string) error {
			gotSymbol = symbol
			return nil
		},
		clearFavoritesFn: func(userID uint) error { return nil },
	}
	svc := NewUserService(store, testSecret)

	// Delete of a nonexistent id reports the same success marker.
	assert.NoError(t, svc.Delete(999))

	// A user with no portfolio entries gets an empty set, not a failure.
	entries, err := svc.GetPortfolio(5)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Removing an absent favorite still succeeds.
	assert.NoError(t, svc.RemoveFavorite(5, "ETH"))
	assert.Equal(t, "ETH", gotSymbol)

	// Clearing an empty favorites set still succeeds.
	assert.NoError(t, svc.ClearFavorites(5))
}
