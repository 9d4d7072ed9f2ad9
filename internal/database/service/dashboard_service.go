package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
)

// AdminDashboardStats are the headline totals on the admin dashboard.
type AdminDashboardStats struct {
	TotalEmployees   int64 `json:"total_employees"`
	PendingExpenses  int64 `json:"pending_expenses"`
	TotalSalarySlips int64 `json:"total_salary_slips"`
}

// EmployeeDashboardStats are the headline totals on an employee's own
// dashboard. CurrentMonthSalary is 0 when no slip exists for the current
// month.
type EmployeeDashboardStats struct {
	CurrentMonthSalary float64 `json:"current_month_salary"`
	TotalExpenses      int64   `json:"total_expenses"`
	PendingExpenses    int64   `json:"pending_expenses"`
}

// DashboardService computes the per-role dashboard totals.
type DashboardService interface {
	AdminStats() (*AdminDashboardStats, error)
	EmployeeStats(employeeID uint) (*EmployeeDashboardStats, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	slipRepo    repository.SalarySlipRepository
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	userRepo repository.UserRepository,
	slipRepo repository.SalarySlipRepository,
	expenseRepo repository.ExpenseRepository,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		slipRepo:    slipRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *dashboardService) AdminStats() (*AdminDashboardStats, error) {
	totalEmployees, err := s.userRepo.CountByRole(models.RoleEmployee)
	if err != nil {
		return nil, err
	}

	pendingExpenses, err := s.expenseRepo.CountByStatus(models.ExpensePending)
	if err != nil {
		return nil, err
	}

	totalSlips, err := s.slipRepo.Count()
	if err != nil {
		return nil, err
	}

	return &AdminDashboardStats{
		TotalEmployees:   totalEmployees,
		PendingExpenses:  pendingExpenses,
		TotalSalarySlips: totalSlips,
	}, nil
}

func (s *dashboardService) EmployeeStats(employeeID uint) (*EmployeeDashboardStats, error) {
	currentMonth := time.Now().Format("2006-01")

	var currentMonthSalary float64
	slip, err := s.slipRepo.FindByEmployeeAndMonth(employeeID, currentMonth)
	if err != nil && !errors.Is(err, repository.ErrSalarySlipNotFound) {
		return nil, err
	}
	if slip != nil {
		currentMonthSalary = slip.NetSalary
	}

	totalExpenses, err := s.expenseRepo.CountByEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	pendingExpenses, err := s.expenseRepo.CountByEmployeeAndStatus(employeeID, models.ExpensePending)
	if err != nil {
		return nil, err
	}

	return &EmployeeDashboardStats{
		CurrentMonthSalary: currentMonthSalary,
		TotalExpenses:      totalExpenses,
		PendingExpenses:    pendingExpenses,
	}, nil
}
