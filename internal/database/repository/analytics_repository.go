package repository

import (
	"gorm.io/gorm"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
)

// MonthlySalaryTotal is one month's summed net pay across all slips.
type MonthlySalaryTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// CategoryTotal is the summed amount of approved expenses in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// EmployeeExpenseTotal is one employee's expense count and summed amount.
type EmployeeExpenseTotal struct {
	EmployeeID    uint    `json:"employee_id"`
	Name          string  `json:"name"`
	TotalExpenses int64   `json:"total_expenses"`
	TotalAmount   float64 `json:"total_amount"`
}

// AnalyticsRepository runs the grouped aggregation queries behind the
// analytics endpoints. Read-only.
type AnalyticsRepository interface {
	MonthlySalaryTrend(limit int) ([]MonthlySalaryTotal, error)
	ExpenseBreakdown(employeeID *uint) ([]CategoryTotal, error)
	EmployeeExpenseSummary() ([]EmployeeExpenseTotal, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// MonthlySalaryTrend groups slips by their raw month_year string, so
// descending order is chronological only for the "YYYY-MM" format the rest of
// the system writes.
func (r *analyticsRepository) MonthlySalaryTrend(limit int) ([]MonthlySalaryTotal, error) {
	var results []MonthlySalaryTotal
	err := r.db.Model(&models.SalarySlip{}).
		Select("month_year AS month, SUM(net_salary) AS total").
		Group("month_year").
		Order("month_year DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ExpenseBreakdown sums approved expenses per category, optionally scoped to
// one employee.
func (r *analyticsRepository) ExpenseBreakdown(employeeID *uint) ([]CategoryTotal, error) {
	query := r.db.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("status = ?", models.ExpenseApproved)

	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var results []CategoryTotal
	if err := query.Group("category").Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// EmployeeExpenseSummary inner-joins users to their expenses; employees with
// no expenses do not appear.
func (r *analyticsRepository) EmployeeExpenseSummary() ([]EmployeeExpenseTotal, error) {
	var results []EmployeeExpenseTotal
	err := r.db.Model(&models.User{}).
		Select("users.id AS employee_id, COALESCE(NULLIF(users.full_name, ''), users.email) AS name, COUNT(expenses.id) AS total_expenses, COALESCE(SUM(expenses.amount), 0) AS total_amount").
		Joins("JOIN expenses ON expenses.employee_id = users.id").
		Group("users.id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
