package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
)

// PurchaseReaderSvc defines read operations for installment purchase data
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a specific purchase owned by the user.
	GetPurchaseByID(ctx context.Context, userID string, purchaseID string) (*domain.InstallmentPurchase, error)

	// ListPurchasesByCard retrieves all purchases of one card, unfiltered by
	// period.
	ListPurchasesByCard(ctx context.Context, userID string, cardID string) ([]domain.InstallmentPurchase, error)
}

// PurchaseWriterSvc defines write operations for installment purchase data.
// Purchases are immutable after creation; the only mutations are create and
// delete.
type PurchaseWriterSvc interface {
	// CreatePurchase validates and persists a new purchase starting at the
	// given period.
	CreatePurchase(ctx context.Context, userID string, cardID string, req dto.CreatePurchaseRequest) (*domain.InstallmentPurchase, error)

	// DeletePurchase removes a purchase.
	DeletePurchase(ctx context.Context, userID string, purchaseID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
