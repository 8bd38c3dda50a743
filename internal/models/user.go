package models

// User represents the user model in the database
type User struct {
	Base
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relationships. Transactions hang off accounts, not users.
	Accounts   []Account  `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	Categories []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
}
