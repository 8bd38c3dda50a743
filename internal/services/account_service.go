package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/LucianoPiassi/fintech-app/internal/errors"
	"github.com/LucianoPiassi/fintech-app/internal/models"
)

// accountService handles account-related business logic. Balances are
// never stored: every read derives current_balance from the account's
// initial balance and its transactions. There is no cache to go stale.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// balanceSelect is the signed aggregation shared by the listing and
// global-balance queries. Income adds, expense subtracts; an account
// with no transactions keeps exactly its initial balance.
const balanceSelect = `
	a.initial_balance
	+ COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE 0 END), 0)
	- COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0)`

// CreateAccount creates a new account. The initial balance is already
// in cents here: major-unit conversion happens at the API boundary.
func (s *accountService) CreateAccount(userID, name, bankName string, initialBalance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	account := &models.Account{
		UserID:         userID,
		Name:           name,
		BankName:       bankName,
		InitialBalance: initialBalance,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserAccounts retrieves the user's accounts with their derived
// current balances.
func (s *accountService) GetUserAccounts(userID string) ([]AccountBalance, error) {
	var accounts []AccountBalance
	err := s.db.Raw(`
		SELECT a.id, a.name, a.bank_name, a.initial_balance, `+balanceSelect+` AS current_balance
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		WHERE a.user_id = ?
		GROUP BY a.id, a.name, a.bank_name, a.initial_balance
		ORDER BY a.id ASC`, userID).Scan(&accounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if accounts == nil {
		accounts = []AccountBalance{}
	}
	return accounts, nil
}

// GetAccountByID retrieves an account scoped to its owner. A missing
// account and a foreign account are indistinguishable to the caller:
// both are a permission error, so account ids cannot be probed.
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountForbidden
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// GetGlobalBalance sums the current balances of all the user's
// accounts. A user with no accounts has a global balance of zero.
func (s *accountService) GetGlobalBalance(userID string) (int64, error) {
	var result struct {
		Total *int64
	}
	err := s.db.Raw(`
		SELECT SUM(current_balance) AS total FROM (
			SELECT `+balanceSelect+` AS current_balance
			FROM accounts a
			LEFT JOIN transactions t ON t.account_id = a.id
			WHERE a.user_id = ?
			GROUP BY a.id, a.initial_balance
		) AS balances`, userID).Scan(&result).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if result.Total == nil {
		return 0, nil
	}
	return *result.Total, nil
}
