package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// profileService implements the ProfileSvcFacade interface
type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new profile service
func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{
		profileRepo: repo,
	}
}

// Ensure profileService implements the ProfileSvcFacade interface
var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetSalary(ctx context.Context, userID string) (decimal.Decimal, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No profile row yet means no salary configured.
			return decimal.Zero, nil
		}
		s.LogError(ctx, err, "Failed to find profile")
		return decimal.Zero, err
	}
	return profile.Salary, nil
}

func (s *profileService) UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) (*domain.Profile, error) {
	if salary.IsNegative() {
		err := fmt.Errorf("%w: salary must not be negative, got %s", apperrors.ErrValidation, salary)
		s.LogError(ctx, err, "Rejected negative salary")
		return nil, err
	}

	now := time.Now()
	profile := domain.Profile{
		UserID: userID,
		Salary: salary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to upsert profile")
		return nil, err
	}

	s.LogInfo(ctx, "Salary updated successfully",
		slog.String("salary", salary.String()))
	return &profile, nil
}
