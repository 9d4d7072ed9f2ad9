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

// SubmitExpenseInput carries a new reimbursement claim. Amount and category
// are stored as given, without server-side validation.
type SubmitExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	ExpenseDate time.Time
	ReceiptURL  *string
}

// ExpenseService defines the interface for expense claim business logic.
// Submission belongs to the owning employee; review is admin-gated by the
// caller.
type ExpenseService interface {
	Submit(employeeID uint, input SubmitExpenseInput) (*models.Expense, error)
	Review(adminID, expenseID uint, status models.ExpenseStatus) (*models.Expense, error)
	ListAll() ([]models.Expense, error)
	ListForEmployee(employeeID uint) ([]models.Expense, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	notifier    Notifier
	pool        *worker.Pool
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service instance
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	pool *worker.Pool,
	logger *slog.Logger,
) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		pool:        pool,
		logger:      logger,
	}
}

// Submit records a claim in the pending state.
func (s *expenseService) Submit(employeeID uint, input SubmitExpenseInput) (*models.Expense, error) {
	s.logger.Info("🧾 [ExpenseService] Submitting expense",
		"employee_id", employeeID,
		"category", input.Category,
	)

	expense := &models.Expense{
		EmployeeID:  employeeID,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		ExpenseDate: input.ExpenseDate,
		ReceiptURL:  input.ReceiptURL,
		Status:      models.ExpensePending,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		s.logger.Error("❌ [ExpenseService] Failed to create expense", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ExpenseService] Expense submitted", "expense_id", expense.ID)
	return expense, nil
}

// Review sets the claim's status, reviewer, and review timestamp together.
// The current status is not checked first: an already-reviewed claim can be
// reviewed again and the later decision wins.
func (s *expenseService) Review(adminID, expenseID uint, status models.ExpenseStatus) (*models.Expense, error) {
	if !status.Valid() {
		return nil, ErrInvalidExpenseStatus
	}

	expense, err := s.expenseRepo.FindByID(expenseID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			s.logger.Warn("⚠️ [ExpenseService] Expense not found", "expense_id", expenseID)
			return nil, err
		}
		s.logger.Error("❌ [ExpenseService] Database error", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	expense.Status = status
	expense.ReviewedBy = &adminID
	expense.ReviewedAt = &now

	if err := s.expenseRepo.Update(expense); err != nil {
		s.logger.Error("❌ [ExpenseService] Failed to update expense", "error", err)
		return nil, err
	}

	s.notifyEmployee(expense.EmployeeID, string(status))

	s.logger.Info("✅ [ExpenseService] Expense reviewed",
		"expense_id", expense.ID,
		"status", status,
		"reviewed_by", adminID,
	)
	return expense, nil
}

func (s *expenseService) ListAll() ([]models.Expense, error) {
	return s.expenseRepo.FindAll()
}

func (s *expenseService) ListForEmployee(employeeID uint) ([]models.Expense, error) {
	return s.expenseRepo.FindByEmployee(employeeID)
}

func (s *expenseService) notifyEmployee(employeeID uint, status string) {
	s.pool.Submit(func(ctx context.Context) {
		employee, err := s.userRepo.FindByID(employeeID)
		if err != nil {
			s.logger.Warn("⚠️ [ExpenseService] Skipping notification, employee lookup failed",
				"employee_id", employeeID,
				"error", err,
			)
			return
		}
		s.notifier.ExpenseReviewed(ctx, employee.Email, status)
	})
}

// Service errors
var (
	ErrInvalidExpenseStatus = errors.New("invalid expense status")
)
