package repositories

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// CardReader defines read operations for credit card data
type CardReader interface {
	// FindCardByID retrieves a specific card by its unique identifier.
	FindCardByID(ctx context.Context, cardID string) (*domain.CreditCard, error)

	// ListCards retrieves all cards owned by a user, oldest first.
	ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error)
}

// CardWriter defines write operations for credit card data
type CardWriter interface {
	// SaveCard persists a new card.
	SaveCard(ctx context.Context, card domain.CreditCard) error

	// UpdateCard updates an existing card's details.
	UpdateCard(ctx context.Context, card domain.CreditCard) error

	// DeleteCard removes a card. Purchases and bill states cascade at the
	// database level.
	DeleteCard(ctx context.Context, cardID string) error
}

// CardRepositoryFacade combines all card-related repository interfaces
type CardRepositoryFacade interface {
	CardReader
	CardWriter
}
