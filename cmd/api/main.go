package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/LucianoPiassi/fintech-app/internal/config"
	"github.com/LucianoPiassi/fintech-app/internal/database"
	"github.com/LucianoPiassi/fintech-app/internal/handlers"
	"github.com/LucianoPiassi/fintech-app/internal/logger"
	"github.com/LucianoPiassi/fintech-app/internal/middleware"
	"github.com/LucianoPiassi/fintech-app/internal/services"
	"github.com/LucianoPiassi/fintech-app/internal/validator"
	"github.com/LucianoPiassi/fintech-app/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/LucianoPiassi/fintech-app/internal/docs" // Import swagger docs
)

// @title           Fintech App API
// @version         1.0
// @description     Personal finance tracker: accounts, income and expense transactions, categories and spending reports.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	db := dbManager.DB()
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, accountService)
	reportService := services.NewReportService(db)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
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

	// Embedded dashboard for everything else.
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	fileServer := http.FileServer(http.FS(staticFS))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/auth/") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			}})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	log.Infof("Starting fintech-app server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
