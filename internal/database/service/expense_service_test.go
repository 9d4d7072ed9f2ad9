package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/repository"
	"github.com/Nareshm03/Payroll-Management-System/internal/worker"
)

func newExpenseService(t *testing.T) (ExpenseService, *gorm.DB, *spyNotifier, *worker.Pool) {
	db := setupTestDB(t)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifier := &spyNotifier{}
	pool := worker.NewPool(testLogger())
	svc := NewExpenseService(expenseRepo, userRepo, notifier, pool, testLogger())
	return svc, db, notifier, pool
}

func TestExpenseService_Submit(t *testing.T) {
	svc, db, _, pool := newExpenseService(t)
	defer pool.Shutdown(time.Second)

	employee := seedUser(t, db, "emp@example.com", models.RoleEmployee)

	expense, err := svc.Submit(employee.ID, SubmitExpenseInput{
		Amount:      150,
		Category:    "Travel",
		Description: "Client visit",
		ExpenseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotZero(t, expense.ID)
	assert.Equal(t, models.ExpensePending, expense.Status)
	assert.Nil(t, expense.ReviewedBy)
	assert.Nil(t, expense.ReviewedAt)
}

func TestExpenseService_Review(t *testing.T) {
	svc, db, notifier, pool := newExpenseService(t)

	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	employee := seedUser(t, db, "emp@example.com", models.RoleEmployee)

	expense, err := svc.Submit(employee.ID, SubmitExpenseInput{
		Amount:      150,
		Category:    "Travel",
		Description: "Client visit",
		ExpenseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(admin.ID, expense.ID, models.ExpenseApproved)
	require.NoError(t, err)

	// Status, reviewer, and timestamp move together
	assert.Equal(t, models.ExpenseApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.ID, *reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.WithinDuration(t, time.Now().UTC(), *reviewed.ReviewedAt, time.Minute)

	pool.Shutdown(time.Second)
	assert.Equal(t, []string{"emp@example.com:approved"}, notifier.ExpenseReviewedCalls())
}

func TestExpenseService_Review_AlreadyReviewed(t *testing.T) {
	svc, db, _, pool := newExpenseService(t)
	defer pool.Shutdown(time.Second)

	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	second := seedUser(t, db, "admin2@example.com", models.RoleAdmin)
	employee := seedUser(t, db, "emp@example.com", models.RoleEmployee)

	expense, err := svc.Submit(employee.ID, SubmitExpenseInput{
		Amount:      80,
		Category:    "Meals",
		Description: "Team lunch",
		ExpenseDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Review(admin.ID, expense.ID, models.ExpenseApproved)
	require.NoError(t, err)

	// There is no pending-only guard: a second review overwrites the first
	reviewed, err := svc.Review(second.ID, expense.ID, models.ExpenseRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ExpenseRejected, reviewed.Status)
	assert.Equal(t, second.ID, *reviewed.ReviewedBy)
}

func TestExpenseService_Review_Errors(t *testing.T) {
	svc, db, _, pool := newExpenseService(t)
	defer pool.Shutdown(time.Second)

	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	_, err := svc.Review(admin.ID, 42, models.ExpenseApproved)
	assert.ErrorIs(t, err, repository.ErrExpenseNotFound)

	_, err = svc.Review(admin.ID, 42, models.ExpenseStatus("maybe"))
	assert.ErrorIs(t, err, ErrInvalidExpenseStatus)
}

func TestExpenseService_Listing(t *testing.T) {
	svc, db, _, pool := newExpenseService(t)
	defer pool.Shutdown(time.Second)

	employee := seedUser(t, db, "emp@example.com", models.RoleEmployee)
	other := seedUser(t, db, "other@example.com", models.RoleEmployee)

	base := time.Now().Add(-time.Hour)
	for i, employeeID := range []uint{employee.ID, other.ID, employee.ID} {
		expense := &models.Expense{
			EmployeeID:  employeeID,
			Amount:      float64(10 * (i + 1)),
			Category:    "Misc",
			Description: "seed",
			ExpenseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:      models.ExpensePending,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(expense).Error)
	}

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 30.0, all[0].Amount)

	mine, err := svc.ListForEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 30.0, mine[0].Amount)
	assert.Equal(t, 10.0, mine[1].Amount)
}
