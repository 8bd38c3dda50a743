package integration

import (
	"net/http"
	"testing"

	"github.com/LucianoPiassi/fintech-app/internal/models"
)

func TestTransactionAndReportFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("monthly summary and category report agree with the ledger", func(t *testing.T) {
		token, _ := app.registerUser(t, "relatorios", "secret123")
		accountID := app.createAccount(t, token, "Corrente", 0)

		app.createTransaction(t, token, accountID, "INCOME", "Salário", "2024-01-05", 500)
		app.createTransaction(t, token, accountID, "EXPENSE", "Mercado", "2024-01-20", 200)

		rec := app.request("GET", "/api/reports/monthly", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		months := parseJSON(t, rec)["report"].([]interface{})
		if len(months) != 1 {
			t.Fatalf("expected 1 month, got %d", len(months))
		}
		jan := months[0].(map[string]interface{})
		if jan["month"] != "2024-01" || jan["income"].(float64) != 500 || jan["expense"].(float64) != 200 {
			t.Errorf("unexpected monthly summary: %v", jan)
		}

		recCat := app.request("GET", "/api/reports/category", "", token)
		totals := parseJSON(t, recCat)["report"].([]interface{})
		if len(totals) != 1 {
			t.Fatalf("expected 1 category total, got %d", len(totals))
		}
		mercado := totals[0].(map[string]interface{})
		if mercado["category"] != "Mercado" || mercado["total"].(float64) != 200 {
			t.Errorf("unexpected category total: %v", mercado)
		}

		recBal := app.request("GET", "/api/global-balance", "", token)
		if total := parseJSON(t, recBal)["total"].(float64); total != 300 {
			t.Errorf("expected balance 300, got %v", total)
		}
	})

	t.Run("month and category filters narrow the listing", func(t *testing.T) {
		token, _ := app.registerUser(t, "filtros", "secret123")
		accountID := app.createAccount(t, token, "Corrente", 0)

		app.createTransaction(t, token, accountID, "EXPENSE", "Mercado", "2024-01-10", 100)
		app.createTransaction(t, token, accountID, "EXPENSE", "Lazer", "2024-01-15", 50)
		app.createTransaction(t, token, accountID, "EXPENSE", "Mercado", "2024-02-10", 70)

		rec := app.request("GET", "/api/transactions?month=2024-01&category=Mercado", "", token)
		rows := parseJSON(t, rec)["data"].([]interface{})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}

		recAll := app.request("GET", "/api/transactions?month=2024-01&category=Todas", "", token)
		rows = parseJSON(t, recAll)["data"].([]interface{})
		if len(rows) != 2 {
			t.Errorf("expected 2 rows for Todas, got %d", len(rows))
		}
	})

	t.Run("deleting a category keeps transaction labels", func(t *testing.T) {
		token, _ := app.registerUser(t, "etiquetas", "secret123")
		accountID := app.createAccount(t, token, "Corrente", 0)

		rec := app.request("POST", "/api/categories",
			`{"name":"Assinaturas","type":"EXPENSE"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
		}
		categoryID := parseJSON(t, rec)["category"].(map[string]interface{})["id"].(string)

		app.createTransaction(t, token, accountID, "EXPENSE", "Assinaturas", "2024-03-01", 2990)

		recDel := app.request("DELETE", "/api/categories/"+categoryID, "", token)
		if recDel.Code != http.StatusOK {
			t.Fatalf("delete category failed: %d", recDel.Code)
		}

		recList := app.request("GET", "/api/transactions", "", token)
		rows := parseJSON(t, recList)["data"].([]interface{})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].(map[string]interface{})["category"] != "Assinaturas" {
			t.Errorf("expected label to survive deletion, got %v", rows[0])
		}
	})

	t.Run("deleting the user removes everything they own", func(t *testing.T) {
		token, userID := app.registerUser(t, "partindo", "secret123")
		accountID := app.createAccount(t, token, "Corrente", 10)
		app.createTransaction(t, token, accountID, "EXPENSE", "Mercado", "2024-01-10", 100)

		rec := app.request("DELETE", "/api/user", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete user failed: %d %s", rec.Code, rec.Body.String())
		}

		var users, accounts, categories, transactions int64
		app.DB.Model(&models.User{}).Where("id = ?", userID).Count(&users)
		app.DB.Model(&models.Account{}).Where("user_id = ?", userID).Count(&accounts)
		app.DB.Model(&models.Category{}).Where("user_id = ?", userID).Count(&categories)
		app.DB.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&transactions)
		if users != 0 || accounts != 0 || categories != 0 || transactions != 0 {
			t.Errorf("expected full cascade, got users=%d accounts=%d categories=%d transactions=%d",
				users, accounts, categories, transactions)
		}
	})
}
