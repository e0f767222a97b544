package domain

// Favorite Model. Acts as a set: the composite unique index rejects a
// second (user, symbol) row at the storage layer.
type Favorite struct {
	ID           uint   `gorm:"primaryKey" json:"id"`                                       // Primary key
	UserID       uint   `gorm:"uniqueIndex:idx_user_symbol;not null" json:"user_id"`        // Foreign key to User
	CryptoSymbol string `gorm:"uniqueIndex:idx_user_symbol;size:16;not null" json:"crypto_symbol"` // Asset symbol
}
