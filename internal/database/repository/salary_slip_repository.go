package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
)

// SalarySlipRepository defines the interface for salary slip data operations.
// Slips are never deleted.
type SalarySlipRepository interface {
	Create(slip *models.SalarySlip) error
	FindByID(id uint) (*models.SalarySlip, error)
	Update(slip *models.SalarySlip) error
	FindAll() ([]models.SalarySlip, error)
	FindByEmployee(employeeID uint) ([]models.SalarySlip, error)
	FindByEmployeeAndMonth(employeeID uint, monthYear string) (*models.SalarySlip, error)
	Count() (int64, error)
}

type salarySlipRepository struct {
	db *gorm.DB
}

// NewSalarySlipRepository creates a new salary slip repository instance
func NewSalarySlipRepository(db *gorm.DB) SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

func (r *salarySlipRepository) Create(slip *models.SalarySlip) error {
	return r.db.Create(slip).Error
}

func (r *salarySlipRepository) FindByID(id uint) (*models.SalarySlip, error) {
	var slip models.SalarySlip
	err := r.db.First(&slip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalarySlipNotFound
		}
		return nil, err
	}
	return &slip, nil
}

func (r *salarySlipRepository) Update(slip *models.SalarySlip) error {
	return r.db.Save(slip).Error
}

func (r *salarySlipRepository) FindAll() ([]models.SalarySlip, error) {
	var slips []models.SalarySlip
	if err := r.db.Order("created_at DESC").Find(&slips).Error; err != nil {
		return nil, err
	}
	return slips, nil
}

func (r *salarySlipRepository) FindByEmployee(employeeID uint) ([]models.SalarySlip, error) {
	var slips []models.SalarySlip
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&slips).Error
	if err != nil {
		return nil, err
	}
	return slips, nil
}

func (r *salarySlipRepository) FindByEmployeeAndMonth(employeeID uint, monthYear string) (*models.SalarySlip, error) {
	var slip models.SalarySlip
	err := r.db.Where("employee_id = ? AND month_year = ?", employeeID, monthYear).
		First(&slip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalarySlipNotFound
		}
		return nil, err
	}
	return &slip, nil
}

func (r *salarySlipRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.SalarySlip{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Repository errors
var (
	ErrSalarySlipNotFound = errors.New("salary slip not found")
)
