package domain

import "github.com/shopspring/decimal"

// PortfolioEntry Model
type PortfolioEntry struct {
	ID              uint            `gorm:"primaryKey" json:"id"`                              // Primary key
	UserID          uint            `gorm:"index;not null" json:"user_id"`                     // Foreign key to User
	CryptoSymbol    string          `gorm:"size:16;not null" json:"crypto_symbol"`             // Asset symbol, e.g. BTC
	Quantity        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"quantity"`       // Held quantity
	AverageBuyPrice decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"average_buy_price"` // Average acquisition price
}

// TableName maps the model to the portfolio table
func (PortfolioEntry) TableName() string {
	return "portfolio"
}
