package models

// Account represents a money container owned by a user. The stored
// initial_balance is an integer number of cents; the account's current
// balance is never stored and is derived from its transactions on read.
type Account struct {
	Base
	UserID         string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string `gorm:"not null" json:"name"`
	BankName       string `json:"bank_name"`
	InitialBalance int64  `gorm:"type:bigint;not null;default:0" json:"initial_balance"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
