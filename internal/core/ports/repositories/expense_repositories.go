package repositories

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// ExpenseReader defines read operations for standalone expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a user's expenses for one period, newest first.
	ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for standalone expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
