package models

import (
	"time"
)

// ExpenseStatus is the review state of a claim.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// Valid reports whether s is a known review status.
func (s ExpenseStatus) Valid() bool {
	return s == ExpensePending || s == ExpenseApproved || s == ExpenseRejected
}

// Expense is one employee's reimbursement claim. Claims start pending and are
// moved to approved or rejected by an admin; ReviewedBy and ReviewedAt are set
// together with the status.
type Expense struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	EmployeeID  uint          `gorm:"not null;index" json:"employee_id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Category    string        `gorm:"not null" json:"category"`
	Description string        `gorm:"not null" json:"description"`
	ExpenseDate time.Time     `gorm:"not null" json:"expense_date"`
	ReceiptURL  *string       `json:"receipt_url"`
	Status      ExpenseStatus `gorm:"not null;default:'pending'" json:"status"`
	ReviewedBy  *uint         `json:"reviewed_by"`
	ReviewedAt  *time.Time    `json:"reviewed_at"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TableName overrides the table name
func (Expense) TableName() string {
	return "expenses"
}
