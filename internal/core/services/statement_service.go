package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/billing"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
)

// statementService implements StatementReaderSvc. It fetches a consistent
// snapshot of raw records and hands them to the billing package; every call
// recomputes from scratch, so repeating a query is always safe.
type statementService struct {
	BaseService
	cardRepo      portsrepo.CardRepositoryFacade
	purchaseRepo  portsrepo.PurchaseRepositoryFacade
	billStateRepo portsrepo.BillStateRepositoryFacade
}

// NewStatementService creates a new statement service
func NewStatementService(
	cardRepo portsrepo.CardRepositoryFacade,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	billStateRepo portsrepo.BillStateRepositoryFacade,
) portssvc.StatementReaderSvc {
	return &statementService{
		cardRepo:      cardRepo,
		purchaseRepo:  purchaseRepo,
		billStateRepo: billStateRepo,
	}
}

// Ensure statementService implements the StatementReaderSvc interface
var _ portssvc.StatementReaderSvc = (*statementService)(nil)

func (s *statementService) GetCardStatement(ctx context.Context, userID string, cardID string, period domain.Period) (*domain.CardStatement, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find card for statement",
				slog.String("card_id", cardID))
		}
		return nil, err
	}
	if card.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	purchases, err := s.purchaseRepo.ListPurchasesByCards(ctx, []string{cardID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for statement",
			slog.String("card_id", cardID))
		return nil, fmt.Errorf("failed to list purchases for card %s: %w", cardID, err)
	}

	state, err := s.billStateRepo.FindBillState(ctx, cardID, period)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find bill state for statement",
			slog.String("card_id", cardID),
			slog.String("period", period.String()))
		return nil, err
	}
	// An absent state is the normal case; the engine treats it as
	// unpaid with zero extra value.

	st := billing.ComputeStatement(*card, purchases, state, period)

	s.LogDebug(ctx, "Card statement derived",
		slog.String("card_id", cardID),
		slog.String("period", period.String()),
		slog.Int("active_items", len(st.Items)))
	return &st, nil
}

func (s *statementService) ListCardStatements(ctx context.Context, userID string, period domain.Period) ([]domain.CardStatement, error) {
	cards, err := s.cardRepo.ListCards(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards for statements")
		return nil, fmt.Errorf("failed to list cards for user %s: %w", userID, err)
	}
	if len(cards) == 0 {
		return []domain.CardStatement{}, nil
	}

	cardIDs := make([]string, len(cards))
	for i, card := range cards {
		cardIDs[i] = card.CardID
	}

	purchases, err := s.purchaseRepo.ListPurchasesByCards(ctx, cardIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for statements")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	purchasesByCard := make(map[string][]domain.InstallmentPurchase, len(cards))
	for _, p := range purchases {
		purchasesByCard[p.CardID] = append(purchasesByCard[p.CardID], p)
	}

	states, err := s.billStateRepo.FindBillStatesByCards(ctx, cardIDs, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bill states for statements",
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to list bill states: %w", err)
	}

	statements := make([]domain.CardStatement, len(cards))
	for i, card := range cards {
		var state *domain.BillPeriodState
		if st, ok := states[card.CardID]; ok {
			state = &st
		}
		statements[i] = billing.ComputeStatement(card, purchasesByCard[card.CardID], state, period)
	}

	s.LogDebug(ctx, "Card statements derived",
		slog.String("period", period.String()),
		slog.Int("card_count", len(statements)))
	return statements, nil
}
