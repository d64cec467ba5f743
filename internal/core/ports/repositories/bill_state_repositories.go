package repositories

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// BillStateReader defines read operations for per-period manual bill state
type BillStateReader interface {
	// FindBillState retrieves the state row for (card, period). Returns
	// apperrors.ErrNotFound when no row exists yet.
	FindBillState(ctx context.Context, cardID string, period domain.Period) (*domain.BillPeriodState, error)

	// FindBillStatesByCards retrieves the state rows of the given cards for
	// one period, keyed by card ID. Cards without a row are absent from the
	// map.
	FindBillStatesByCards(ctx context.Context, cardIDs []string, period domain.Period) (map[string]domain.BillPeriodState, error)
}

// BillStateWriter defines write operations for per-period manual bill state.
// Rows are created lazily on the first mutation and updated in place after
// that; normal flow never deletes them.
type BillStateWriter interface {
	// SaveBillState persists a new state row.
	SaveBillState(ctx context.Context, state domain.BillPeriodState) error

	// UpdateBillState updates an existing state row in place.
	UpdateBillState(ctx context.Context, state domain.BillPeriodState) error
}

// BillStateRepositoryFacade combines all bill-state repository interfaces
type BillStateRepositoryFacade interface {
	BillStateReader
	BillStateWriter
}
