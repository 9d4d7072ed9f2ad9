package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
)

func newAnalyticsService(t *testing.T) (AnalyticsService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db), testLogger())
	return svc, db
}

func seedSlip(t *testing.T, db *gorm.DB, employeeID uint, monthYear string, net float64) {
	slip := &models.SalarySlip{
		EmployeeID:  employeeID,
		MonthYear:   monthYear,
		BasicSalary: net,
		NetSalary:   net,
		CreatedBy:   1,
	}
	require.NoError(t, db.Create(slip).Error)
}

func seedExpense(t *testing.T, db *gorm.DB, employeeID uint, category string, amount float64, status models.ExpenseStatus) {
	expense := &models.Expense{
		EmployeeID:  employeeID,
		Amount:      amount,
		Category:    category,
		Description: "seed",
		ExpenseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
	require.NoError(t, db.Create(expense).Error)
}

func TestAnalyticsService_MonthlySalaryTrend(t *testing.T) {
	svc, db := newAnalyticsService(t)

	seedSlip(t, db, 1, "2024-01", 5000)
	seedSlip(t, db, 2, "2024-01", 4000)
	seedSlip(t, db, 1, "2024-02", 5500)
	seedSlip(t, db, 1, "2024-03", 6000)

	trend, err := svc.MonthlySalaryTrend(2)
	require.NoError(t, err)

	// Two most recent months, descending
	require.Len(t, trend, 2)
	assert.Equal(t, "2024-03", trend[0].Month)
	assert.Equal(t, 6000.0, trend[0].Total)
	assert.Equal(t, "2024-02", trend[1].Month)
	assert.Equal(t, 5500.0, trend[1].Total)
}

func TestAnalyticsService_MonthlySalaryTrend_DefaultMonths(t *testing.T) {
	svc, db := newAnalyticsService(t)

	for _, month := range []string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"} {
		seedSlip(t, db, 1, month, 1000)
	}

	trend, err := svc.MonthlySalaryTrend(0)
	require.NoError(t, err)
	assert.Len(t, trend, DefaultTrendMonths)
	assert.Equal(t, "2024-03", trend[0].Month)
}

func TestAnalyticsService_ExpenseBreakdown(t *testing.T) {
	svc, db := newAnalyticsService(t)

	seedExpense(t, db, 1, "Travel", 150, models.ExpenseApproved)
	seedExpense(t, db, 1, "Travel", 50, models.ExpenseApproved)
	seedExpense(t, db, 2, "Meals", 30, models.ExpenseApproved)
	// Pending and rejected amounts never count
	seedExpense(t, db, 1, "Travel", 999, models.ExpensePending)
	seedExpense(t, db, 2, "Meals", 999, models.ExpenseRejected)

	breakdown, err := svc.ExpenseBreakdown(nil)
	require.NoError(t, err)

	totals := map[string]float64{}
	for _, row := range breakdown {
		totals[row.Category] = row.Total
	}
	assert.Equal(t, map[string]float64{"Travel": 200, "Meals": 30}, totals)
}

func TestAnalyticsService_ExpenseBreakdown_ScopedToEmployee(t *testing.T) {
	svc, db := newAnalyticsService(t)

	seedExpense(t, db, 1, "Travel", 150, models.ExpenseApproved)
	seedExpense(t, db, 2, "Travel", 75, models.ExpenseApproved)

	employeeID := uint(1)
	breakdown, err := svc.ExpenseBreakdown(&employeeID)
	require.NoError(t, err)

	require.Len(t, breakdown, 1)
	assert.Equal(t, "Travel", breakdown[0].Category)
	assert.Equal(t, 150.0, breakdown[0].Total)
}

func TestAnalyticsService_EmployeeExpenseSummary(t *testing.T) {
	svc, db := newAnalyticsService(t)

	withExpenses := seedUser(t, db, "spender@example.com", models.RoleEmployee)
	named := &models.User{Email: "named@example.com", PasswordHash: "h", FullName: "Named User", Role: models.RoleEmployee}
	require.NoError(t, db.Create(named).Error)
	// This employee never files anything and must not appear
	seedUser(t, db, "frugal@example.com", models.RoleEmployee)

	seedExpense(t, db, withExpenses.ID, "Travel", 100, models.ExpenseApproved)
	seedExpense(t, db, withExpenses.ID, "Meals", 40, models.ExpensePending)
	seedExpense(t, db, named.ID, "Travel", 60, models.ExpenseRejected)

	summary, err := svc.EmployeeExpenseSummary()
	require.NoError(t, err)

	require.Len(t, summary, 2)

	byID := map[uint]repository.EmployeeExpenseTotal{}
	for _, row := range summary {
		byID[row.EmployeeID] = row
	}

	// Name falls back to the email when no full name is set; the summary
	// counts every claim regardless of status
	assert.Equal(t, "spender@example.com", byID[withExpenses.ID].Name)
	assert.Equal(t, int64(2), byID[withExpenses.ID].TotalExpenses)
	assert.Equal(t, 140.0, byID[withExpenses.ID].TotalAmount)

	assert.Equal(t, "Named User", byID[named.ID].Name)
	assert.Equal(t, int64(1), byID[named.ID].TotalExpenses)
	assert.Equal(t, 60.0, byID[named.ID].TotalAmount)
}
