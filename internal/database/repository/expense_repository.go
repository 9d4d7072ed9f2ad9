package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
)

// ExpenseRepository defines the interface for expense claim data operations.
// Claims are never deleted.
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	FindByID(id uint) (*models.Expense, error)
	Update(expense *models.Expense) error
	FindAll() ([]models.Expense, error)
	FindByEmployee(employeeID uint) ([]models.Expense, error)
	CountByStatus(status models.ExpenseStatus) (int64, error)
	CountByEmployee(employeeID uint) (int64, error)
	CountByEmployeeAndStatus(employeeID uint, status models.ExpenseStatus) (int64, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepository) FindByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepository) FindAll() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) FindByEmployee(employeeID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) CountByStatus(status models.ExpenseStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Expense{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *expenseRepository) CountByEmployee(employeeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Expense{}).Where("employee_id = ?", employeeID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *expenseRepository) CountByEmployeeAndStatus(employeeID uint, status models.ExpenseStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Expense{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Repository errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
)
