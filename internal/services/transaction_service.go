package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "github.com/LucianoPiassi/fintech-app/internal/errors"
	"github.com/LucianoPiassi/fintech-app/internal/models"
	"github.com/LucianoPiassi/fintech-app/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction records a transaction on one of the user's
// accounts. The ownership check runs before any write: a request
// against a foreign (or nonexistent) account fails with a permission
// error and leaves no row behind.
func (s *transactionService) CreateTransaction(
	userID, accountID, description string,
	amount int64,
	transactionType models.TransactionType,
	category string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if accountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	if date.IsZero() {
		date = time.Now()
	}

	account, err := s.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		AccountID:   account.ID,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves the user's transactions across all
// accounts, newest first (date, then id; ids are time-ordered), with
// optional month and category filters.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[TransactionRow], error) {
	page.Defaults()

	where := `a.user_id = ?`
	args := []interface{}{userID}

	if filter.Month != "" {
		// substr over the text form of the date yields YYYY-MM on both
		// Postgres and SQLite, unlike TO_CHAR/strftime.
		where += ` AND substr(CAST(t.date AS TEXT), 1, 7) = ?`
		args = append(args, filter.Month)
	}
	if filter.Category != "" && filter.Category != AllCategories {
		where += ` AND t.category = ?`
		args = append(args, filter.Category)
	}

	var totalItems int64
	err := s.db.Raw(`
		SELECT COUNT(*)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		WHERE `+where, args...).Scan(&totalItems).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []TransactionRow
	err = s.db.Raw(`
		SELECT t.id, t.account_id, a.name AS account_name, t.description,
		       t.amount, t.type, t.category, t.date, t.created_at
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		WHERE `+where+`
		ORDER BY t.date DESC, t.id DESC
		LIMIT ? OFFSET ?`, append(args, page.PageSize, page.Offset())...).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(rows, page.Page, page.PageSize, totalItems)
	return &result, nil
}
