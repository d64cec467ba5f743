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

// purchaseService implements the PurchaseSvcFacade interface
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	cardService  portssvc.CardReaderSvc
}

// NewPurchaseService creates a new purchase service. The card reader is used
// to verify ownership of the target card.
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, cardService portssvc.CardReaderSvc) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: repo,
		cardService:  cardService,
	}
}

// Ensure purchaseService implements the PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, userID string, cardID string, req dto.CreatePurchaseRequest) (*domain.InstallmentPurchase, error) {
	// The card must exist and belong to the user
	if _, err := s.cardService.GetCardByID(ctx, userID, cardID); err != nil {
		return nil, err
	}

	start, err := domain.NewPeriodFromCalendar(req.StartMonth, req.StartYear)
	if err != nil {
		s.LogError(ctx, err, "Invalid start period for purchase",
			slog.Int("start_month", req.StartMonth),
			slog.Int("start_year", req.StartYear))
		return nil, err
	}

	if req.TotalInstallments < 1 || !req.TotalValue.IsPositive() {
		err := fmt.Errorf("%w: installments=%d, total=%s",
			apperrors.ErrInvalidPurchase, req.TotalInstallments, req.TotalValue)
		s.LogError(ctx, err, "Rejected malformed purchase",
			slog.String("card_id", cardID))
		return nil, err
	}

	now := time.Now()
	purchase := domain.InstallmentPurchase{
		PurchaseID:        uuid.NewString(),
		CardID:            cardID,
		UserID:            userID,
		Description:       req.Description,
		TotalValue:        req.TotalValue,
		TotalInstallments: req.TotalInstallments,
		Start:             start,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase",
			slog.String("purchase_id", purchase.PurchaseID),
			slog.String("card_id", cardID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase created successfully",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("card_id", cardID),
		slog.Int("total_installments", purchase.TotalInstallments))
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, userID string, purchaseID string) (*domain.InstallmentPurchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID",
				slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}

	if purchase.UserID != userID {
		s.LogDebug(ctx, "Purchase found but belongs to different user",
			slog.String("purchase_id", purchaseID))
		return nil, apperrors.ErrNotFound
	}

	return purchase, nil
}

func (s *purchaseService) ListPurchasesByCard(ctx context.Context, userID string, cardID string) ([]domain.InstallmentPurchase, error) {
	if _, err := s.cardService.GetCardByID(ctx, userID, cardID); err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListPurchasesByCards(ctx, []string{cardID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases",
			slog.String("card_id", cardID))
		return nil, fmt.Errorf("failed to list purchases for card %s: %w", cardID, err)
	}

	if purchases == nil {
		return []domain.InstallmentPurchase{}, nil
	}
	return purchases, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, userID string, purchaseID string) error {
	if _, err := s.GetPurchaseByID(ctx, userID, purchaseID); err != nil {
		return err
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase",
			slog.String("purchase_id", purchaseID))
		return err
	}

	s.LogInfo(ctx, "Purchase deleted successfully",
		slog.String("purchase_id", purchaseID))
	return nil
}
