package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
)

// CardReaderSvc defines read operations for credit card data
type CardReaderSvc interface {
	// GetCardByID retrieves a specific card owned by the user.
	GetCardByID(ctx context.Context, userID string, cardID string) (*domain.CreditCard, error)

	// ListCards retrieves all cards owned by the user, oldest first.
	ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error)
}

// CardWriterSvc defines write operations for credit card data
type CardWriterSvc interface {
	// CreateCard persists a new card.
	CreateCard(ctx context.Context, userID string, req dto.CreateCardRequest) (*domain.CreditCard, error)

	// UpdateCard renames an existing card.
	UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.CreditCard, error)

	// DeleteCard removes a card along with its purchases and bill states.
	DeleteCard(ctx context.Context, userID string, cardID string) error
}

// CardSvcFacade combines all card-related service interfaces
type CardSvcFacade interface {
	CardReaderSvc
	CardWriterSvc
}
