package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Nareshm03/Payroll-Management-System/internal/handler"
	"github.com/Nareshm03/Payroll-Management-System/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	employeeHandler *handler.EmployeeHandler,
	analyticsHandler *handler.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(rateLimiter, logger))

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Payroll Management System API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		auth.GET("/employees", authMiddleware.RequireAuth(), authHandler.Employees)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/salary-slips", adminHandler.CreateSalarySlip)
		admin.PUT("/salary-slips/:id", adminHandler.UpdateSalarySlip)
		admin.GET("/salary-slips", adminHandler.ListSalarySlips)
		admin.GET("/salary-slips/export", adminHandler.ExportSalarySlips)
		admin.GET("/salary-slips/export/xlsx", adminHandler.ExportSalarySlipsXLSX)
		admin.GET("/expenses", adminHandler.ListExpenses)
		admin.PATCH("/expenses/:id", adminHandler.ReviewExpense)
		admin.GET("/expenses/export", adminHandler.ExportExpenses)
		admin.GET("/expenses/export/xlsx", adminHandler.ExportExpensesXLSX)
		admin.GET("/employees", adminHandler.ListEmployees)
		admin.GET("/dashboard-stats", adminHandler.DashboardStats)
	}

	// Employee routes: any authenticated user acting on their own records
	employee := r.Group("/employee")
	employee.Use(authMiddleware.RequireAuth())
	{
		employee.POST("/expenses", employeeHandler.SubmitExpense)
		employee.GET("/expenses", employeeHandler.ListMyExpenses)
		employee.GET("/salary-slips", employeeHandler.ListMySalarySlips)
		employee.GET("/dashboard-stats", employeeHandler.DashboardStats)
	}

	// Analytics routes
	analytics := r.Group("/analytics")
	{
		analytics.GET("/salary-trends", authMiddleware.RequireAdmin(), analyticsHandler.SalaryTrends)
		analytics.GET("/expense-breakdown", authMiddleware.RequireAdmin(), analyticsHandler.ExpenseBreakdown)
		analytics.GET("/employee-expenses", authMiddleware.RequireAdmin(), analyticsHandler.EmployeeExpenses)
		analytics.GET("/my-expense-breakdown", authMiddleware.RequireAuth(), analyticsHandler.MyExpenseBreakdown)
	}

	return r
}
