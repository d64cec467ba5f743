package dto

import (
	"time"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// CreateCardRequest defines the data needed to create a new credit card.
type CreateCardRequest struct {
	BankName string `json:"bankName" binding:"required"`
}

// UpdateCardRequest defines the data allowed for updating a card.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCardRequest struct {
	BankName *string `json:"bankName"`
}

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID    string    `json:"cardID"`
	BankName  string    `json:"bankName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCardResponse converts a domain.CreditCard to CardResponse DTO
func ToCardResponse(card *domain.CreditCard) CardResponse {
	return CardResponse{
		CardID:    card.CardID,
		BankName:  card.BankName,
		CreatedAt: card.CreatedAt,
	}
}

// ListCardsResponse wraps the list of cards.
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}
