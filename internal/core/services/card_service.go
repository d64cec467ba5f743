package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
)

// cardService implements the CardSvcFacade interface
type cardService struct {
	BaseService
	cardRepo portsrepo.CardRepositoryFacade
}

// NewCardService creates a new card service
func NewCardService(repo portsrepo.CardRepositoryFacade) portssvc.CardSvcFacade {
	return &cardService{
		cardRepo: repo,
	}
}

// Ensure cardService implements the CardSvcFacade interface
var _ portssvc.CardSvcFacade = (*cardService)(nil)

func (s *cardService) CreateCard(ctx context.Context, userID string, req dto.CreateCardRequest) (*domain.CreditCard, error) {
	now := time.Now()
	card := domain.CreditCard{
		CardID:   uuid.NewString(),
		UserID:   userID,
		BankName: req.BankName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card",
			slog.String("card_id", card.CardID))
		return nil, err
	}

	s.LogInfo(ctx, "Card created successfully",
		slog.String("card_id", card.CardID),
		slog.String("bank_name", card.BankName))
	return &card, nil
}

func (s *cardService) GetCardByID(ctx context.Context, userID string, cardID string) (*domain.CreditCard, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find card by ID",
				slog.String("card_id", cardID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if card.UserID != userID {
		s.LogDebug(ctx, "Card found but belongs to different user",
			slog.String("card_id", cardID))
		return nil, apperrors.ErrNotFound
	}

	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	cards, err := s.cardRepo.ListCards(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards")
		return nil, fmt.Errorf("failed to list cards for user %s: %w", userID, err)
	}

	if cards == nil {
		return []domain.CreditCard{}, nil // Return empty slice if repo returns nil
	}

	s.LogDebug(ctx, "Cards listed successfully",
		slog.Int("count", len(cards)))
	return cards, nil
}

func (s *cardService) UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.CreditCard, error) {
	card, err := s.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, err // GetCardByID already logs errors
	}

	updated := false
	if req.BankName != nil {
		card.BankName = *req.BankName
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for card update",
			slog.String("card_id", cardID))
		return card, nil
	}

	now := time.Now()
	card.LastUpdatedAt = now
	card.LastUpdatedBy = userID

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		s.LogError(ctx, err, "Failed to update card",
			slog.String("card_id", cardID))
		return nil, err
	}

	s.LogInfo(ctx, "Card updated successfully",
		slog.String("card_id", card.CardID))
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, userID string, cardID string) error {
	// Verify that the card exists and belongs to the user first
	if _, err := s.GetCardByID(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.cardRepo.DeleteCard(ctx, cardID); err != nil {
		s.LogError(ctx, err, "Failed to delete card",
			slog.String("card_id", cardID))
		return err
	}

	s.LogInfo(ctx, "Card deleted successfully",
		slog.String("card_id", cardID))
	return nil
}
