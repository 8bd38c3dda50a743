package models

import (
	"time"

	"github.com/LucianoPiassi/fintech-app/internal/uuid"

	"gorm.io/gorm"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction represents a financial movement on an account. The amount
// is a non-negative integer number of cents; the sign is carried by the
// type, not by the stored value. Transactions are immutable records:
// no Base embed, no updated_at.
type Transaction struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID   string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null;default:'Outros'" json:"category"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 and applies the category default
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New()
	}
	if t.Category == "" {
		t.Category = DefaultCategoryName
	}
	return nil
}
