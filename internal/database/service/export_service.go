package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
)

// ExportService renders ledger records for download. CSV and XLSX share the
// same fixed column order; downstream imports depend on it.
type ExportService interface {
	SalarySlipsCSV(slips []models.SalarySlip) (string, error)
	ExpensesCSV(expenses []models.Expense) (string, error)
	SalarySlipsXLSX(slips []models.SalarySlip) ([]byte, error)
	ExpensesXLSX(expenses []models.Expense) ([]byte, error)
}

var salarySlipColumns = []string{
	"ID", "Employee ID", "Month", "Basic Salary",
	"Allowances", "Bonuses", "Deductions", "Tax", "Net Salary",
}

var expenseColumns = []string{
	"ID", "Employee ID", "Amount", "Category",
	"Description", "Date", "Status",
}

type exportService struct {
	logger *slog.Logger
}

// NewExportService creates a new export service instance
func NewExportService(logger *slog.Logger) ExportService {
	return &exportService{logger: logger}
}

func (s *exportService) SalarySlipsCSV(slips []models.SalarySlip) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(salarySlipColumns); err != nil {
		return "", err
	}

	for _, slip := range slips {
		if err := writer.Write(salarySlipRow(slip)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	return buf.String(), writer.Error()
}

func (s *exportService) ExpensesCSV(expenses []models.Expense) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(expenseColumns); err != nil {
		return "", err
	}

	for _, expense := range expenses {
		if err := writer.Write(expenseRow(expense)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	return buf.String(), writer.Error()
}

func (s *exportService) SalarySlipsXLSX(slips []models.SalarySlip) ([]byte, error) {
	rows := make([][]string, 0, len(slips))
	for _, slip := range slips {
		rows = append(rows, salarySlipRow(slip))
	}
	return s.writeSheet(salarySlipColumns, rows)
}

func (s *exportService) ExpensesXLSX(expenses []models.Expense) ([]byte, error) {
	rows := make([][]string, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, expenseRow(expense))
	}
	return s.writeSheet(expenseColumns, rows)
}

func (s *exportService) writeSheet(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("⚠️ [ExportService] Failed to close workbook", "error", err)
		}
	}()

	sheet := "Sheet1"

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func salarySlipRow(slip models.SalarySlip) []string {
	return []string{
		strconv.FormatUint(uint64(slip.ID), 10),
		strconv.FormatUint(uint64(slip.EmployeeID), 10),
		slip.MonthYear,
		formatAmount(slip.BasicSalary),
		formatAmount(slip.Allowances),
		formatAmount(slip.Bonuses),
		formatAmount(slip.Deductions),
		formatAmount(slip.Tax),
		formatAmount(slip.NetSalary),
	}
}

func expenseRow(expense models.Expense) []string {
	return []string{
		strconv.FormatUint(uint64(expense.ID), 10),
		strconv.FormatUint(uint64(expense.EmployeeID), 10),
		formatAmount(expense.Amount),
		expense.Category,
		expense.Description,
		expense.ExpenseDate.Format("2006-01-02"),
		string(expense.Status),
	}
}

func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
