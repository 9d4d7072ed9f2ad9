package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/service"
	"github.com/Nareshm03/Payroll-Management-System/internal/middleware"
)

// AnalyticsHandler handles the read-only aggregation endpoints
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// SalaryTrends handles GET /analytics/salary-trends?months=N
func (h *AnalyticsHandler) SalaryTrends(c *gin.Context) {
	months := service.DefaultTrendMonths
	if monthsStr := c.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer"})
			return
		}
		months = parsed
	}

	trend, err := h.analyticsService.MonthlySalaryTrend(months)
	if err != nil {
		h.logger.Error("❌ [AnalyticsHandler] Failed to compute salary trend", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, trend)
}

// ExpenseBreakdown handles GET /analytics/expense-breakdown (all employees)
func (h *AnalyticsHandler) ExpenseBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.ExpenseBreakdown(nil)
	if err != nil {
		h.logger.Error("❌ [AnalyticsHandler] Failed to compute expense breakdown", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// MyExpenseBreakdown handles GET /analytics/my-expense-breakdown, scoped to
// the acting user
func (h *AnalyticsHandler) MyExpenseBreakdown(c *gin.Context) {
	user := middleware.CurrentUser(c)

	breakdown, err := h.analyticsService.ExpenseBreakdown(&user.ID)
	if err != nil {
		h.logger.Error("❌ [AnalyticsHandler] Failed to compute expense breakdown", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// EmployeeExpenses handles GET /analytics/employee-expenses
func (h *AnalyticsHandler) EmployeeExpenses(c *gin.Context) {
	summary, err := h.analyticsService.EmployeeExpenseSummary()
	if err != nil {
		h.logger.Error("❌ [AnalyticsHandler] Failed to compute employee expense summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
