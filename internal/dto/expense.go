package dto

import (
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to add a standalone expense
// to the viewed period.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Value       decimal.Decimal `json:"value" binding:"required"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Period      PeriodResponse  `json:"period"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Value:       e.Value.Round(2),
		Period:      ToPeriodResponse(e.Period),
	}
}

// ListExpensesResponse wraps the list of expenses of one period.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
