package domain

import (
	"github.com/shopspring/decimal"
)

// Profile holds per-user settings consumed by the monthly summary, currently
// just the salary.
type Profile struct {
	UserID string          `json:"userID"` // Primary key (JWT subject)
	Salary decimal.Decimal `json:"salary"`
	AuditFields
}
