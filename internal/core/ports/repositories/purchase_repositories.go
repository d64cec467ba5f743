package repositories

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// PurchaseReader defines read operations for installment purchase data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a specific purchase by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, error)

	// ListPurchasesByCards retrieves every purchase of the given cards,
	// unfiltered by period; the billing engine applies the active-window
	// test per query.
	ListPurchasesByCards(ctx context.Context, cardIDs []string) ([]domain.InstallmentPurchase, error)
}

// PurchaseWriter defines write operations for installment purchase data.
// Purchases are immutable after creation; there is no update.
type PurchaseWriter interface {
	// SavePurchase persists a new purchase.
	SavePurchase(ctx context.Context, purchase domain.InstallmentPurchase) error

	// DeletePurchase removes a purchase.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
