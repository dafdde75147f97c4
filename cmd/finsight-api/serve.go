package main

import (
	"fmt"

	"github.com/finsight/backend/internal/config"
	"github.com/finsight/backend/internal/handlers"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/middleware"
	"github.com/finsight/backend/internal/repository"
	"github.com/finsight/backend/internal/scheduler"
	"github.com/finsight/backend/internal/service"
	"github.com/finsight/backend/pkg/postgrest"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logCfg := logger.DefaultConfig()
	if cfg.Server.Env != "production" {
		logCfg.Format = "text"
		logCfg.Level = logger.LevelDebug
	}
	logger.SetDefault(logger.NewSlogLogger(logCfg))

	logger.Info("starting finsight API server",
		logger.String("env", cfg.Server.Env),
		logger.String("store_url", cfg.Store.URL))

	// Initialize data API client
	storeClient := postgrest.NewClient(cfg.Store.URL, cfg.Store.ServiceKey)

	// Initialize repositories
	expenseRepo := repository.NewExpenseRepository(storeClient)
	incomeRepo := repository.NewIncomeRepository(storeClient)
	budgetRepo := repository.NewBudgetRepository(storeClient)
	sharedRepo := repository.NewSharedExpenseRepository(storeClient)
	snapshotRepo := repository.NewSnapshotRepository(storeClient)

	// Initialize services
	expenseService := service.NewExpenseService(expenseRepo)
	incomeService := service.NewIncomeService(incomeRepo)
	analyticsService := service.NewAnalyticsService(expenseRepo, incomeRepo, budgetRepo, snapshotRepo)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo)
	sharedService := service.NewSharedExpenseService(sharedRepo)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	sharedHandler := handlers.NewSharedExpenseHandler(sharedService)

	// Start the periodic snapshot recompute
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(analyticsService, cfg.Scheduler.Cron)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(storeClient))
		{
			// Expense routes
			protected.GET("/expenses", expenseHandler.ListExpenses)
			protected.POST("/expenses", expenseHandler.CreateExpense)
			protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

			// Income routes
			protected.GET("/incomes", incomeHandler.ListIncomes)
			protected.POST("/incomes", incomeHandler.CreateIncome)

			// Analytics routes
			protected.GET("/analytics/snapshot", analyticsHandler.GetSnapshot)
			protected.POST("/analytics/snapshot", analyticsHandler.ComputeSnapshot)

			// Budget routes
			protected.GET("/budgets", budgetHandler.ListBudgets)
			protected.POST("/budgets/fifty-thirty-twenty", budgetHandler.CreateFiftyThirtyTwenty)
			protected.POST("/budgets/zero-based", budgetHandler.CreateZeroBased)
			protected.POST("/budgets/envelope", budgetHandler.CreateEnvelope)
			protected.POST("/budgets/:id/refresh", budgetHandler.RefreshSpending)
			protected.GET("/budgets/:id/analysis", budgetHandler.AnalyzeBudget)
			protected.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

			// Shared expense routes
			protected.POST("/shared-expenses", sharedHandler.CreateSharedExpense)
			protected.POST("/shared-expenses/:id/splits/:participant_id/pay", sharedHandler.MarkSplitPaid)
			protected.GET("/groups/:group_id/expenses", sharedHandler.ListGroupExpenses)
			protected.GET("/groups/:group_id/balances", sharedHandler.GetGroupBalances)
		}
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
