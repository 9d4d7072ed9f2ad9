package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/service"
	"github.com/Nareshm03/Payroll-Management-System/internal/middleware"
)

// AdminHandler handles the admin-gated payroll endpoints
type AdminHandler struct {
	salaryService    service.SalaryService
	expenseService   service.ExpenseService
	dashboardService service.DashboardService
	exportService    service.ExportService
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	salaryService service.SalaryService,
	expenseService service.ExpenseService,
	dashboardService service.DashboardService,
	exportService service.ExportService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		salaryService:    salaryService,
		expenseService:   expenseService,
		dashboardService: dashboardService,
		exportService:    exportService,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Request DTOs
type CreateSalarySlipRequest struct {
	EmployeeID  uint    `json:"employee_id" binding:"required"`
	MonthYear   string  `json:"month_year" binding:"required"`
	BasicSalary float64 `json:"basic_salary" binding:"required"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	Bonuses     float64 `json:"bonuses"`
	Tax         float64 `json:"tax"`
	Notes       string  `json:"notes"`
}

type UpdateSalarySlipRequest struct {
	BasicSalary *float64 `json:"basic_salary"`
	Allowances  *float64 `json:"allowances"`
	Deductions  *float64 `json:"deductions"`
	Bonuses     *float64 `json:"bonuses"`
	Tax         *float64 `json:"tax"`
	Notes       *string  `json:"notes"`
}

type ReviewExpenseRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateSalarySlip handles POST /admin/salary-slips
func (h *AdminHandler) CreateSalarySlip(c *gin.Context) {
	var req CreateSalarySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [AdminHandler] Invalid salary slip request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. employee_id, month_year, and basic_salary required."})
		return
	}

	admin := middleware.CurrentUser(c)

	slip, err := h.salaryService.CreateSlip(admin.ID, service.CreateSalarySlipInput{
		EmployeeID:  req.EmployeeID,
		MonthYear:   req.MonthYear,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		Bonuses:     req.Bonuses,
		Tax:         req.Tax,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slip)
}

// UpdateSalarySlip handles PUT /admin/salary-slips/:id
func (h *AdminHandler) UpdateSalarySlip(c *gin.Context) {
	slipID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateSalarySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [AdminHandler] Invalid salary slip update", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	slip, err := h.salaryService.UpdateSlip(slipID, service.UpdateSalarySlipInput{
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		Bonuses:     req.Bonuses,
		Tax:         req.Tax,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slip)
}

// ListSalarySlips handles GET /admin/salary-slips
func (h *AdminHandler) ListSalarySlips(c *gin.Context) {
	slips, err := h.salaryService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slips)
}

// ListExpenses handles GET /admin/expenses
func (h *AdminHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// ReviewExpense handles PATCH /admin/expenses/:id
func (h *AdminHandler) ReviewExpense(c *gin.Context) {
	expenseID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req ReviewExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [AdminHandler] Invalid expense review", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status required"})
		return
	}

	admin := middleware.CurrentUser(c)

	expense, err := h.expenseService.Review(admin.ID, expenseID, models.ExpenseStatus(req.Status))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// ListEmployees handles GET /admin/employees
func (h *AdminHandler) ListEmployees(c *gin.Context) {
	employees, err := h.userRepo.FindByRole(models.RoleEmployee)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// DashboardStats handles GET /admin/dashboard-stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.AdminStats()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportSalarySlips handles GET /admin/salary-slips/export
func (h *AdminHandler) ExportSalarySlips(c *gin.Context) {
	slips, err := h.salaryService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	csvData, err := h.exportService.SalarySlipsCSV(slips)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=salary_slips.csv")
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// ExportSalarySlipsXLSX handles GET /admin/salary-slips/export/xlsx
func (h *AdminHandler) ExportSalarySlipsXLSX(c *gin.Context) {
	slips, err := h.salaryService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, err := h.exportService.SalarySlipsXLSX(slips)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=salary_slips.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportExpenses handles GET /admin/expenses/export
func (h *AdminHandler) ExportExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	csvData, err := h.exportService.ExpensesCSV(expenses)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.csv")
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// ExportExpensesXLSX handles GET /admin/expenses/export/xlsx
func (h *AdminHandler) ExportExpensesXLSX(c *gin.Context) {
	expenses, err := h.expenseService.ListAll()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, err := h.exportService.ExpensesXLSX(expenses)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *AdminHandler) parseID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		h.logger.Error("❌ [AdminHandler] Invalid id", "id", idStr, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps service errors to HTTP responses
func (h *AdminHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSalarySlipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Salary slip not found"})
	case errors.Is(err, repository.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
	case errors.Is(err, service.ErrInvalidExpenseStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be pending, approved, or rejected"})
	default:
		h.logger.Error("❌ [AdminHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
