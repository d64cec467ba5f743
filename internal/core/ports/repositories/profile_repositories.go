package repositories

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// ProfileReader defines read operations for user profile data
type ProfileReader interface {
	// FindProfileByUserID retrieves a user's profile. Returns
	// apperrors.ErrNotFound when the user has no profile row yet.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for user profile data
type ProfileWriter interface {
	// UpsertProfile creates the user's profile row or updates it in place.
	UpsertProfile(ctx context.Context, profile domain.Profile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
