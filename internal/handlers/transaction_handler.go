package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/LucianoPiassi/fintech-app/internal/errors"
	"github.com/LucianoPiassi/fintech-app/internal/models"
	"github.com/LucianoPiassi/fintech-app/internal/pagination"
	"github.com/LucianoPiassi/fintech-app/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording
// a transaction. Amount is in cents; Date is optional ("2006-01-02",
// defaults to today); Category is free text, defaulting to "Outros".
type CreateTransactionRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required,transaction_type"`
	Category    string `json:"category" binding:"max=100"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsQuery represents the listing filters.
type ListTransactionsQuery struct {
	Month    string `form:"month" binding:"omitempty,month"`
	Category string `form:"category"`
	pagination.PageRequest
}

// CreateTransaction records a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense against one of the authenticated user's accounts
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Account does not belong to the caller"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	tx, err := h.transactionService.CreateTransaction(
		userID,
		req.AccountID,
		req.Description,
		req.Amount,
		models.TransactionType(req.Type),
		req.Category,
		date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetUserTransactions lists the user's transactions, newest first
// @Summary     Get user transactions
// @Description Get the authenticated user's transactions across all accounts, optionally filtered by month and category
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month     query string false "Month filter (YYYY-MM)"
// @Param       category  query string false "Category filter ('Todas' disables it)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 100, max 500)"
// @Success     200 {object} pagination.PageResponse[services.TransactionRow] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid filters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, query.PageRequest, services.TransactionFilter{
		Month:    query.Month,
		Category: query.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
