package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateSalaryRequest defines the data needed to set the user's salary.
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary" binding:"required"`
}

// SalaryResponse defines the data returned for the user's salary.
type SalaryResponse struct {
	Salary decimal.Decimal `json:"salary"`
}
