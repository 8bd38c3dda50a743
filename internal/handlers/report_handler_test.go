package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/LucianoPiassi/fintech-app/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	categoryReportFn func(userID string) ([]services.CategoryTotal, error)
	monthlyReportFn  func(userID string) ([]services.MonthlySummary, error)
}

func (m *mockReportService) CategoryReport(userID string) ([]services.CategoryTotal, error) {
	if m.categoryReportFn != nil {
		return m.categoryReportFn(userID)
	}
	return []services.CategoryTotal{}, nil
}

func (m *mockReportService) MonthlyReport(userID string) ([]services.MonthlySummary, error) {
	if m.monthlyReportFn != nil {
		return m.monthlyReportFn(userID)
	}
	return []services.MonthlySummary{}, nil
}

// verify interface compliance
var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/api/reports/category", handler.CategoryReport)
	auth.GET("/api/reports/monthly", handler.MonthlyReport)
	return r
}

func TestReportHandler_CategoryReport(t *testing.T) {
	t.Run("returns 200 with totals", func(t *testing.T) {
		reportSvc := &mockReportService{
			categoryReportFn: func(_ string) ([]services.CategoryTotal, error) {
				return []services.CategoryTotal{
					{Category: "Mercado", Total: 20000},
					{Category: "Lazer", Total: 3000},
				}, nil
			},
		}
		handler := NewReportHandler(reportSvc)
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/api/reports/category", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		report := result["report"].([]interface{})
		if len(report) != 2 {
			t.Fatalf("expected 2 totals, got %d", len(report))
		}
		first := report[0].(map[string]interface{})
		if first["category"] != "Mercado" || first["total"].(float64) != 20000 {
			t.Errorf("unexpected first total: %v", first)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{})
		r := gin.New()
		r.GET("/api/reports/category", handler.CategoryReport)

		rec := doRequest(r, "GET", "/api/reports/category", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestReportHandler_MonthlyReport(t *testing.T) {
	t.Run("returns 200 with summaries", func(t *testing.T) {
		reportSvc := &mockReportService{
			monthlyReportFn: func(_ string) ([]services.MonthlySummary, error) {
				return []services.MonthlySummary{
					{Month: "2024-01", Income: 500, Expense: 200},
					{Month: "2024-02", Income: 0, Expense: 70},
				}, nil
			},
		}
		handler := NewReportHandler(reportSvc)
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/api/reports/monthly", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		report := result["report"].([]interface{})
		if len(report) != 2 {
			t.Fatalf("expected 2 months, got %d", len(report))
		}
		first := report[0].(map[string]interface{})
		if first["month"] != "2024-01" || first["income"].(float64) != 500 || first["expense"].(float64) != 200 {
			t.Errorf("unexpected first summary: %v", first)
		}
	})
}
