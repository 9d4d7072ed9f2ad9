package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/service"
	"github.com/Nareshm03/Payroll-Management-System/internal/middleware"
)

// EmployeeHandler handles the endpoints an authenticated user calls on their
// own behalf
type EmployeeHandler struct {
	expenseService   service.ExpenseService
	salaryService    service.SalaryService
	dashboardService service.DashboardService
	logger           *slog.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(
	expenseService service.ExpenseService,
	salaryService service.SalaryService,
	dashboardService service.DashboardService,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		expenseService:   expenseService,
		salaryService:    salaryService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

type SubmitExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	ReceiptURL  *string `json:"receipt_url"`
}

// SubmitExpense handles POST /employee/expenses
func (h *EmployeeHandler) SubmitExpense(c *gin.Context) {
	var req SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [EmployeeHandler] Invalid expense request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. amount, category, description, and expense_date required."})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense_date must be YYYY-MM-DD"})
		return
	}

	user := middleware.CurrentUser(c)

	expense, err := h.expenseService.Submit(user.ID, service.SubmitExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		ExpenseDate: expenseDate,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		h.logger.Error("❌ [EmployeeHandler] Failed to submit expense", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListMyExpenses handles GET /employee/expenses
func (h *EmployeeHandler) ListMyExpenses(c *gin.Context) {
	user := middleware.CurrentUser(c)

	expenses, err := h.expenseService.ListForEmployee(user.ID)
	if err != nil {
		h.logger.Error("❌ [EmployeeHandler] Failed to list expenses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// ListMySalarySlips handles GET /employee/salary-slips
func (h *EmployeeHandler) ListMySalarySlips(c *gin.Context) {
	user := middleware.CurrentUser(c)

	slips, err := h.salaryService.ListForEmployee(user.ID)
	if err != nil {
		h.logger.Error("❌ [EmployeeHandler] Failed to list salary slips", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, slips)
}

// DashboardStats handles GET /employee/dashboard-stats
func (h *EmployeeHandler) DashboardStats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.dashboardService.EmployeeStats(user.ID)
	if err != nil {
		h.logger.Error("❌ [EmployeeHandler] Failed to compute dashboard stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
