package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LucianoPiassi/fintech-app/internal/handlers"
	"github.com/LucianoPiassi/fintech-app/internal/logger"
	"github.com/LucianoPiassi/fintech-app/internal/middleware"
	"github.com/LucianoPiassi/fintech-app/internal/models"
	"github.com/LucianoPiassi/fintech-app/internal/services"
	"github.com/LucianoPiassi/fintech-app/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, accountService)
	reportService := services.NewReportService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())

	api.GET("/user", userHandler.GetProfile)
	api.PUT("/user", userHandler.UpdateProfile)
	api.DELETE("/user", userHandler.DeleteAccount)

	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.GetUserAccounts)
	api.GET("/global-balance", accountHandler.GetGlobalBalance)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.GetUserTransactions)

	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories", categoryHandler.GetUserCategories)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/reports/category", reportHandler.CategoryReport)
	api.GET("/reports/monthly", reportHandler.MonthlyReport)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the bearer token and user ID.
func (app *testApp) registerUser(t *testing.T, username, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// createAccount creates an account and returns its ID. initialBalance is in major units.
func (app *testApp) createAccount(t *testing.T, token, name string, initialBalance float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"bank_name":"Test Bank","initial_balance":%v}`, name, initialBalance)
	rec := app.request("POST", "/api/accounts", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create account failed: %d %s", rec.Code, rec.Body.String())
	}
	account := parseJSON(t, rec)["account"].(map[string]interface{})
	return account["id"].(string)
}

// createTransaction records a transaction (amount in cents) against an account.
func (app *testApp) createTransaction(t *testing.T, token, accountID, txType, category, date string, amount int64) {
	t.Helper()
	body := fmt.Sprintf(`{"account_id":%q,"description":"Lançamento","amount":%d,"type":%q,"category":%q,"date":%q}`,
		accountID, amount, txType, category, date)
	rec := app.request("POST", "/api/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
}
