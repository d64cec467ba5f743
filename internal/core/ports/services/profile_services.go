package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfileSvcFacade manages per-user settings. A user without a profile row
// has a salary of zero.
type ProfileSvcFacade interface {
	// GetSalary returns the user's salary, zero when no profile exists.
	GetSalary(ctx context.Context, userID string) (decimal.Decimal, error)

	// UpdateSalary sets the user's salary, creating the profile row when
	// needed.
	UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) (*domain.Profile, error)
}
