package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for standalone expense data
type ExpenseReaderSvc interface {
	// ListExpenses retrieves the user's expenses for one period, newest first.
	ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for standalone expense data
type ExpenseWriterSvc interface {
	// CreateExpense persists a new expense in the given period.
	CreateExpense(ctx context.Context, userID string, period domain.Period, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
