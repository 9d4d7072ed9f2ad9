package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Nareshm03/Payroll-Management-System/internal/api"
	"github.com/Nareshm03/Payroll-Management-System/internal/config"
	"github.com/Nareshm03/Payroll-Management-System/internal/database"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/service"
	"github.com/Nareshm03/Payroll-Management-System/internal/handler"
	"github.com/Nareshm03/Payroll-Management-System/internal/logger"
	"github.com/Nareshm03/Payroll-Management-System/internal/middleware"
	"github.com/Nareshm03/Payroll-Management-System/internal/worker"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Payroll] Starting server...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	slipRepo := repository.NewSalarySlipRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// 5. Background pool for fire-and-forget notifications
	pool := worker.NewPool(appLogger)
	defer pool.Shutdown(10 * time.Second)

	notifier := service.NewLogNotifier(appLogger)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	salaryService := service.NewSalaryService(slipRepo, userRepo, notifier, pool, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, userRepo, notifier, pool, appLogger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, appLogger)
	dashboardService := service.NewDashboardService(userRepo, slipRepo, expenseRepo, appLogger)
	exportService := service.NewExportService(appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, userRepo, appLogger)
	adminHandler := handler.NewAdminHandler(salaryService, expenseService, dashboardService, exportService, userRepo, appLogger)
	employeeHandler := handler.NewEmployeeHandler(expenseService, salaryService, dashboardService, appLogger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 8. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 9. Setup Router & Start HTTP Server
	r := api.SetupRouter(authHandler, adminHandler, employeeHandler, analyticsHandler, authMiddleware, rateLimiter, appLogger)

	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	appLogger.Info("🌍 [Payroll] HTTP Server running...", "port", cfg.HTTPPort)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
