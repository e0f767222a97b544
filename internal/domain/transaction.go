package domain

import "github.com/shopspring/decimal"

// Wallet transaction types and statuses
const (
	TxTypeDeposit    = "deposit"    // Funds in
	TxTypeWithdrawal = "withdrawal" // Funds out

	TxStatusPending   = "pending"   // Not yet settled
	TxStatusCompleted = "completed" // Settled
)

// WalletTransaction Model. Append-only ledger row; balance is derived
// by the caller by summing transactions, never stored.
type WalletTransaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID    uint            `gorm:"index;not null" json:"user_id"`             // Foreign key to User
	Type      string          `gorm:"size:16;not null" json:"type"`              // deposit or withdrawal
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"` // Transaction amount
	Status    string          `gorm:"size:16;not null" json:"status"`            // pending or completed
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"created_at"`    // Timestamp of creation in milliseconds
}

// TableName maps the model to the transactions table
func (WalletTransaction) TableName() string {
	return "transactions"
}
