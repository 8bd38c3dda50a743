package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/LucianoPiassi/fintech-app/internal/errors"
	"github.com/LucianoPiassi/fintech-app/internal/money"
	"github.com/LucianoPiassi/fintech-app/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an
// account. InitialBalance arrives in major currency units (reais) and
// is converted to cents server-side.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	BankName       string  `json:"bank_name" binding:"max=100"`
	InitialBalance float64 `json:"initial_balance" binding:"gte=0"`
}

// AccountResponse represents an account with its derived balance.
type AccountResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	BankName              string `json:"bank_name"`
	InitialBalance        int64  `json:"initial_balance"`
	CurrentBalance        int64  `json:"current_balance"`
	CurrentBalanceDisplay string `json:"current_balance_display"`
}

// GlobalBalanceResponse represents the sum of all account balances.
type GlobalBalanceResponse struct {
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create a new bank account for the authenticated user
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} AccountResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(userID, req.Name, req.BankName, money.ToCents(req.InitialBalance))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetUserAccounts lists the user's accounts with derived balances
// @Summary     Get user accounts
// @Description Get the authenticated user's accounts, each with its current balance computed from its transactions
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]AccountResponse "Accounts with balances"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/accounts [get]
func (h *AccountHandler) GetUserAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts := make([]AccountResponse, 0, len(balances))
	for _, b := range balances {
		accounts = append(accounts, AccountResponse{
			ID:                    b.ID,
			Name:                  b.Name,
			BankName:              b.BankName,
			InitialBalance:        b.InitialBalance,
			CurrentBalance:        b.CurrentBalance,
			CurrentBalanceDisplay: money.FormatBRL(b.CurrentBalance),
		})
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetGlobalBalance returns the sum of all the user's account balances
// @Summary     Get global balance
// @Description Sum the current balances of all the authenticated user's accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} GlobalBalanceResponse "Global balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/global-balance [get]
func (h *AccountHandler) GetGlobalBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.accountService.GetGlobalBalance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, GlobalBalanceResponse{
		Total:        total,
		TotalDisplay: money.FormatBRL(total),
	})
}
