package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
	"github.com/Nareshm03/Payroll-Management-System/internal/worker"
)

// CreateSalarySlipInput carries the component fields of a new slip. Net pay is
// derived, never supplied.
type CreateSalarySlipInput struct {
	EmployeeID  uint
	MonthYear   string
	BasicSalary float64
	Allowances  float64
	Deductions  float64
	Bonuses     float64
	Tax         float64
	Notes       string
}

// UpdateSalarySlipInput carries the optional fields of a slip update. Nil
// means "leave unchanged".
type UpdateSalarySlipInput struct {
	BasicSalary *float64
	Allowances  *float64
	Deductions  *float64
	Bonuses     *float64
	Tax         *float64
	Notes       *string
}

// SalaryService defines the interface for salary slip business logic. All
// mutations are admin-gated by the caller.
type SalaryService interface {
	CreateSlip(adminID uint, input CreateSalarySlipInput) (*models.SalarySlip, error)
	UpdateSlip(slipID uint, input UpdateSalarySlipInput) (*models.SalarySlip, error)
	ListAll() ([]models.SalarySlip, error)
	ListForEmployee(employeeID uint) ([]models.SalarySlip, error)
}

type salaryService struct {
	slipRepo repository.SalarySlipRepository
	userRepo repository.UserRepository
	notifier Notifier
	pool     *worker.Pool
	logger   *slog.Logger
}

// NewSalaryService creates a new salary service instance
func NewSalaryService(
	slipRepo repository.SalarySlipRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	pool *worker.Pool,
	logger *slog.Logger,
) SalaryService {
	return &salaryService{
		slipRepo: slipRepo,
		userRepo: userRepo,
		notifier: notifier,
		pool:     pool,
		logger:   logger,
	}
}

// CreateSlip persists a new slip with its net pay computed from the component
// fields. EmployeeID is stored as given; nothing checks that it names an
// existing employee-role account.
func (s *salaryService) CreateSlip(adminID uint, input CreateSalarySlipInput) (*models.SalarySlip, error) {
	s.logger.Info("💰 [SalaryService] Creating salary slip",
		"admin_id", adminID,
		"employee_id", input.EmployeeID,
		"month", input.MonthYear,
	)

	slip := &models.SalarySlip{
		EmployeeID:  input.EmployeeID,
		MonthYear:   input.MonthYear,
		BasicSalary: input.BasicSalary,
		Allowances:  input.Allowances,
		Deductions:  input.Deductions,
		Bonuses:     input.Bonuses,
		Tax:         input.Tax,
		Notes:       input.Notes,
		CreatedBy:   adminID,
	}
	slip.ComputeNetSalary()

	if err := s.slipRepo.Create(slip); err != nil {
		s.logger.Error("❌ [SalaryService] Failed to create salary slip", "error", err)
		return nil, err
	}

	s.notifyEmployee(slip.EmployeeID, slip.MonthYear)

	s.logger.Info("✅ [SalaryService] Salary slip created",
		"slip_id", slip.ID,
		"net_salary", slip.NetSalary,
	)
	return slip, nil
}

// UpdateSlip applies only the provided fields and recomputes the net pay from
// the resulting full field set.
func (s *salaryService) UpdateSlip(slipID uint, input UpdateSalarySlipInput) (*models.SalarySlip, error) {
	slip, err := s.slipRepo.FindByID(slipID)
	if err != nil {
		if errors.Is(err, repository.ErrSalarySlipNotFound) {
			s.logger.Warn("⚠️ [SalaryService] Salary slip not found", "slip_id", slipID)
			return nil, err
		}
		s.logger.Error("❌ [SalaryService] Database error", "error", err)
		return nil, err
	}

	if input.BasicSalary != nil {
		slip.BasicSalary = *input.BasicSalary
	}
	if input.Allowances != nil {
		slip.Allowances = *input.Allowances
	}
	if input.Deductions != nil {
		slip.Deductions = *input.Deductions
	}
	if input.Bonuses != nil {
		slip.Bonuses = *input.Bonuses
	}
	if input.Tax != nil {
		slip.Tax = *input.Tax
	}
	if input.Notes != nil {
		slip.Notes = *input.Notes
	}

	slip.ComputeNetSalary()
	slip.UpdatedAt = time.Now().UTC()

	if err := s.slipRepo.Update(slip); err != nil {
		s.logger.Error("❌ [SalaryService] Failed to update salary slip", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [SalaryService] Salary slip updated",
		"slip_id", slip.ID,
		"net_salary", slip.NetSalary,
	)
	return slip, nil
}

func (s *salaryService) ListAll() ([]models.SalarySlip, error) {
	return s.slipRepo.FindAll()
}

func (s *salaryService) ListForEmployee(employeeID uint) ([]models.SalarySlip, error) {
	return s.slipRepo.FindByEmployee(employeeID)
}

// notifyEmployee dispatches the slip-created notification in the background.
// A missing employee record just means nobody to notify.
func (s *salaryService) notifyEmployee(employeeID uint, monthYear string) {
	s.pool.Submit(func(ctx context.Context) {
		employee, err := s.userRepo.FindByID(employeeID)
		if err != nil {
			s.logger.Warn("⚠️ [SalaryService] Skipping notification, employee lookup failed",
				"employee_id", employeeID,
				"error", err,
			)
			return
		}
		s.notifier.SalarySlipCreated(ctx, employee.Email, monthYear)
	})
}
