package service

import (
	"log/slog"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
)

// DefaultTrendMonths is how many months the salary trend covers when the
// caller does not say.
const DefaultTrendMonths = 6

// AnalyticsService defines the interface for read-only aggregation over the
// two ledgers.
type AnalyticsService interface {
	MonthlySalaryTrend(months int) ([]repository.MonthlySalaryTotal, error)
	ExpenseBreakdown(employeeID *uint) ([]repository.CategoryTotal, error)
	EmployeeExpenseSummary() ([]repository.EmployeeExpenseTotal, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, logger *slog.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

func (s *analyticsService) MonthlySalaryTrend(months int) ([]repository.MonthlySalaryTotal, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	return s.analyticsRepo.MonthlySalaryTrend(months)
}

func (s *analyticsService) ExpenseBreakdown(employeeID *uint) ([]repository.CategoryTotal, error) {
	return s.analyticsRepo.ExpenseBreakdown(employeeID)
}

func (s *analyticsService) EmployeeExpenseSummary() ([]repository.EmployeeExpenseTotal, error) {
	return s.analyticsRepo.EmployeeExpenseSummary()
}
