package models

import (
	"time"
)

// SalarySlip is one employee's pay computation for one month. MonthYear is a
// free-form string; the whole system writes it as "YYYY-MM" and the analytics
// ordering relies on that. Nothing prevents two slips for the same employee
// and month.
type SalarySlip struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	EmployeeID  uint      `gorm:"not null;index" json:"employee_id"`
	MonthYear   string    `gorm:"not null" json:"month_year"`
	BasicSalary float64   `gorm:"not null" json:"basic_salary"`
	Allowances  float64   `gorm:"default:0" json:"allowances"`
	Deductions  float64   `gorm:"default:0" json:"deductions"`
	Bonuses     float64   `gorm:"default:0" json:"bonuses"`
	Tax         float64   `gorm:"default:0" json:"tax"`
	NetSalary   float64   `gorm:"not null" json:"net_salary"`
	Notes       string    `json:"notes"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (SalarySlip) TableName() string {
	return "salary_slips"
}

// ComputeNetSalary recalculates and stores the derived net pay. Must be called
// on every create and update.
func (s *SalarySlip) ComputeNetSalary() {
	s.NetSalary = s.BasicSalary + s.Allowances + s.Bonuses - s.Deductions - s.Tax
}
