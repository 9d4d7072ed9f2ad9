package service

import (
	"context"
	"log/slog"
)

// Notifier is the outbound notification capability. Implementations must be
// fire-and-forget: a notification may never block or fail the operation that
// triggered it.
type Notifier interface {
	SalarySlipCreated(ctx context.Context, employeeEmail, monthYear string)
	ExpenseReviewed(ctx context.Context, employeeEmail, status string)
}

// logNotifier logs where a real mailer would send; there is no SMTP
// configured, so delivery is a stub.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that only writes log lines.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SalarySlipCreated(ctx context.Context, employeeEmail, monthYear string) {
	n.logger.Info("📧 [Notifier] Salary slip generated",
		"to", employeeEmail,
		"month", monthYear,
	)
}

func (n *logNotifier) ExpenseReviewed(ctx context.Context, employeeEmail, status string) {
	n.logger.Info("📧 [Notifier] Expense request reviewed",
		"to", employeeEmail,
		"status", status,
	)
}
