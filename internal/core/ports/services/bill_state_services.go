package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillStateSvcFacade manages the manual per-(card, period) bill state. Rows
// come into existence on the first mutation and are updated in place after
// that; there is no delete.
type BillStateSvcFacade interface {
	// TogglePaid flips the paid flag for (card, period), creating the state
	// row with extra value 0 when none exists yet.
	TogglePaid(ctx context.Context, userID string, cardID string, period domain.Period) (*domain.BillPeriodState, error)

	// AddExtraValue adds a positive manual charge to (card, period),
	// creating the state row when none exists yet. Amounts accumulate; they
	// are never overwritten. Non-positive amounts are rejected with
	// apperrors.ErrNonPositiveAdjustment.
	AddExtraValue(ctx context.Context, userID string, cardID string, period domain.Period, amount decimal.Decimal) (*domain.BillPeriodState, error)
}
