package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`         // Primary key
	Name     string `gorm:"not null" json:"name"`         // Display name
	Email    string `gorm:"unique;not null" json:"email"` // Unique email, used as login key
	Password string `gorm:"not null" json:"-"`            // Hashed password, never serialized

	// Child rows cascade on user deletion
	Portfolio    []PortfolioEntry    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []WalletTransaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites    []Favorite          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
