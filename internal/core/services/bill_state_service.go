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
	"github.com/shopspring/decimal"
)

// billStateService implements the BillStateSvcFacade interface. A state row
// for (card, period) starts out absent, is created by the first TogglePaid
// or AddExtraValue, and is mutated in place from then on; nothing in normal
// flow deletes it.
type billStateService struct {
	BaseService
	billStateRepo portsrepo.BillStateRepositoryFacade
	cardService   portssvc.CardReaderSvc
}

// NewBillStateService creates a new bill state service. The card reader is
// used to verify ownership of the target card.
func NewBillStateService(repo portsrepo.BillStateRepositoryFacade, cardService portssvc.CardReaderSvc) portssvc.BillStateSvcFacade {
	return &billStateService{
		billStateRepo: repo,
		cardService:   cardService,
	}
}

// Ensure billStateService implements the BillStateSvcFacade interface
var _ portssvc.BillStateSvcFacade = (*billStateService)(nil)

func (s *billStateService) TogglePaid(ctx context.Context, userID string, cardID string, period domain.Period) (*domain.BillPeriodState, error) {
	if _, err := s.cardService.GetCardByID(ctx, userID, cardID); err != nil {
		return nil, err
	}

	state, err := s.billStateRepo.FindBillState(ctx, cardID, period)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bill state",
				slog.String("card_id", cardID),
				slog.String("period", period.String()))
			return nil, err
		}
		// First mutation for this (card, period): create the row with the
		// flag flipped from its implicit false default.
		created, err := s.createState(ctx, userID, cardID, period, true, decimal.Zero)
		if err != nil {
			return nil, err
		}
		return created, nil
	}

	state.IsPaid = !state.IsPaid
	now := time.Now()
	state.LastUpdatedAt = now
	state.LastUpdatedBy = userID

	if err := s.billStateRepo.UpdateBillState(ctx, *state); err != nil {
		s.LogError(ctx, err, "Failed to update bill state",
			slog.String("card_id", cardID),
			slog.String("period", period.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Bill paid flag toggled",
		slog.String("card_id", cardID),
		slog.String("period", period.String()),
		slog.Bool("is_paid", state.IsPaid))
	return state, nil
}

func (s *billStateService) AddExtraValue(ctx context.Context, userID string, cardID string, period domain.Period, amount decimal.Decimal) (*domain.BillPeriodState, error) {
	if !amount.IsPositive() {
		err := fmt.Errorf("%w: got %s", apperrors.ErrNonPositiveAdjustment, amount)
		s.LogError(ctx, err, "Rejected non-positive extra value",
			slog.String("card_id", cardID),
			slog.String("period", period.String()))
		return nil, err
	}

	if _, err := s.cardService.GetCardByID(ctx, userID, cardID); err != nil {
		return nil, err
	}

	state, err := s.billStateRepo.FindBillState(ctx, cardID, period)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bill state",
				slog.String("card_id", cardID),
				slog.String("period", period.String()))
			return nil, err
		}
		created, err := s.createState(ctx, userID, cardID, period, false, amount)
		if err != nil {
			return nil, err
		}
		return created, nil
	}

	// Extra value accumulates; it is never overwritten.
	state.ExtraValue = state.ExtraValue.Add(amount)
	now := time.Now()
	state.LastUpdatedAt = now
	state.LastUpdatedBy = userID

	if err := s.billStateRepo.UpdateBillState(ctx, *state); err != nil {
		s.LogError(ctx, err, "Failed to update bill state",
			slog.String("card_id", cardID),
			slog.String("period", period.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Extra value added to bill",
		slog.String("card_id", cardID),
		slog.String("period", period.String()),
		slog.String("amount", amount.String()),
		slog.String("extra_value", state.ExtraValue.String()))
	return state, nil
}

func (s *billStateService) createState(ctx context.Context, userID string, cardID string, period domain.Period, isPaid bool, extraValue decimal.Decimal) (*domain.BillPeriodState, error) {
	now := time.Now()
	state := domain.BillPeriodState{
		BillStateID: uuid.NewString(),
		CardID:      cardID,
		UserID:      userID,
		Period:      period,
		IsPaid:      isPaid,
		ExtraValue:  extraValue,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.billStateRepo.SaveBillState(ctx, state); err != nil {
		s.LogError(ctx, err, "Failed to create bill state",
			slog.String("card_id", cardID),
			slog.String("period", period.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Bill state created",
		slog.String("card_id", cardID),
		slog.String("period", period.String()),
		slog.Bool("is_paid", isPaid),
		slog.String("extra_value", extraValue.String()))
	return &state, nil
}
