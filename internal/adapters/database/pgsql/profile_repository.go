package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new repository for user profile data.
func NewProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT
			user_id, salary,
			created_at, created_by, last_updated_at, last_updated_by
		FROM profiles
		WHERE user_id = $1
	`
	profile := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.Salary,
		&profile.CreatedAt, &profile.CreatedBy, &profile.LastUpdatedAt, &profile.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, salary,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET salary = EXCLUDED.salary,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
	`
	_, err := r.pool.Exec(ctx, query,
		profile.UserID, profile.Salary,
		profile.CreatedAt, profile.CreatedBy, profile.LastUpdatedAt, profile.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error upserting profile: %w", err)
	}
	return nil
}
