package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucianoPiassi/fintech-app/internal/services"
)

// ReportHandler handles report-related requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CategoryReport returns expense totals grouped by category
// @Summary     Expenses by category
// @Description Sum the authenticated user's expenses per category label across all accounts
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.CategoryTotal "Category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/reports/category [get]
func (h *ReportHandler) CategoryReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.CategoryReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": totals})
}

// MonthlyReport returns income and expense totals per month
// @Summary     Monthly income and expense
// @Description Sum the authenticated user's income and expenses per calendar month, most recent twelve months in ascending order
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.MonthlySummary "Monthly summaries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/reports/monthly [get]
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.reportService.MonthlyReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": summaries})
}
