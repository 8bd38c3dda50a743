package services

import (
	"time"

	"github.com/LucianoPiassi/fintech-app/internal/models"
	"github.com/LucianoPiassi/fintech-app/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID, username, newPassword string) (*models.User, error)
	DeleteUser(userID string) error
}

// AccountBalance is an account enriched with its derived current
// balance: initial_balance plus signed aggregation of its transactions.
type AccountBalance struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BankName       string `json:"bank_name"`
	InitialBalance int64  `json:"initial_balance"`
	CurrentBalance int64  `json:"current_balance"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name, bankName string, initialBalance int64) (*models.Account, error)
	GetUserAccounts(userID string) ([]AccountBalance, error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	GetGlobalBalance(userID string) (int64, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Month    string // YYYY-MM; empty means all months
	Category string // exact label; empty or AllCategories means no filter
}

// AllCategories is the sentinel category filter value meaning "do not
// filter by category".
const AllCategories = "Todas"

// TransactionRow is a transaction joined with its account's name for listing.
type TransactionRow struct {
	ID          string                 `json:"id"`
	AccountID   string                 `json:"account_id"`
	AccountName string                 `json:"account_name"`
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Date        time.Time              `json:"date"`
	CreatedAt   time.Time              `json:"created_at"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID, description string, amount int64, transactionType models.TransactionType, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[TransactionRow], error)
}

// CategoryTotal is one slice of the all-time expense breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// MonthlySummary is the income/expense aggregation for one calendar month.
type MonthlySummary struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// ReportServicer defines the contract for reporting aggregations.
type ReportServicer interface {
	CategoryReport(userID string) ([]CategoryTotal, error)
	MonthlyReport(userID string) ([]MonthlySummary, error)
}
