package domain

import (
	"github.com/shopspring/decimal"
)

// Expense is a standalone expense scoped directly to a billing period. It is
// independent of cards and installments.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary key (UUID)
	UserID      string          `json:"userID"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"` // > 0
	Period      Period          `json:"period"`
	AuditFields
}
