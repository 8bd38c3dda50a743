package services

import (
	"gorm.io/gorm"

	apperrors "github.com/LucianoPiassi/fintech-app/internal/errors"
)

// reportService derives spending reports from the transaction rows on
// every call. Nothing is cached or materialized.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// CategoryReport groups the user's EXPENSE transactions by category
// label across all accounts, all time. Categories with no expense
// transactions do not appear; the output order is unspecified.
func (s *reportService) CategoryReport(userID string) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := s.db.Raw(`
		SELECT t.category, SUM(t.amount) AS total
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		WHERE a.user_id = ? AND t.type = 'EXPENSE'
		GROUP BY t.category`, userID).Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

// MonthlyReport sums income and expense per calendar month for the
// user, covering only months that have at least one transaction. The
// inner query picks the most recent 12 distinct months; the outer
// ordering returns them ascending for charting.
func (s *reportService) MonthlyReport(userID string) ([]MonthlySummary, error) {
	var summaries []MonthlySummary
	err := s.db.Raw(`
		SELECT month, income, expense FROM (
			SELECT substr(CAST(t.date AS TEXT), 1, 7) AS month,
			       SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE 0 END) AS income,
			       SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END) AS expense
			FROM transactions t
			JOIN accounts a ON t.account_id = a.id
			WHERE a.user_id = ?
			GROUP BY month
			ORDER BY month DESC
			LIMIT 12
		) AS recent
		ORDER BY month ASC`, userID).Scan(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if summaries == nil {
		summaries = []MonthlySummary{}
	}
	return summaries, nil
}
