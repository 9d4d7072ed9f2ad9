package service

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Nareshm03/Payroll-Management-System/internal/config"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.SalarySlip{}, &models.Expense{})
	require.NoError(t, err)

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:             "test-secret",
		AccessTokenExpiration: 1800,
	}
}

// spyNotifier records notification calls for assertions
type spyNotifier struct {
	mu            sync.Mutex
	slipCreated   []string
	expenseStatus []string
}

func (n *spyNotifier) SalarySlipCreated(ctx context.Context, employeeEmail, monthYear string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.slipCreated = append(n.slipCreated, employeeEmail+":"+monthYear)
}

func (n *spyNotifier) ExpenseReviewed(ctx context.Context, employeeEmail, status string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.expenseStatus = append(n.expenseStatus, employeeEmail+":"+status)
}

func (n *spyNotifier) SlipCreatedCalls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.slipCreated...)
}

func (n *spyNotifier) ExpenseReviewedCalls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.expenseStatus...)
}
