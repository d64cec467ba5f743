package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
)

type billStateRepository struct {
	pool *pgxpool.Pool
}

// NewBillStateRepository creates a new repository for per-period bill state data.
func NewBillStateRepository(pool *pgxpool.Pool) portsrepo.BillStateRepositoryFacade {
	return &billStateRepository{pool: pool}
}

func (r *billStateRepository) SaveBillState(ctx context.Context, state domain.BillPeriodState) error {
	query := `
		INSERT INTO bill_period_states (
			bill_state_id, card_id, user_id, month, year, is_paid, extra_value,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		state.BillStateID, state.CardID, state.UserID, state.Period.Month, state.Period.Year,
		state.IsPaid, state.ExtraValue,
		state.CreatedAt, state.CreatedBy, state.LastUpdatedAt, state.LastUpdatedBy,
	)
	if err != nil {
		// The unique (card_id, month, year) constraint guards against two
		// concurrent first mutations creating duplicate rows.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(http.StatusConflict, "bill state already exists for this period", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error inserting bill state: %w", err)
	}
	return nil
}

func (r *billStateRepository) FindBillState(ctx context.Context, cardID string, period domain.Period) (*domain.BillPeriodState, error) {
	query := `
		SELECT
			bill_state_id, card_id, user_id, month, year, is_paid, extra_value,
			created_at, created_by, last_updated_at, last_updated_by
		FROM bill_period_states
		WHERE card_id = $1 AND month = $2 AND year = $3
	`
	state := &domain.BillPeriodState{}
	err := r.pool.QueryRow(ctx, query, cardID, period.Month, period.Year).Scan(
		&state.BillStateID, &state.CardID, &state.UserID, &state.Period.Month, &state.Period.Year,
		&state.IsPaid, &state.ExtraValue,
		&state.CreatedAt, &state.CreatedBy, &state.LastUpdatedAt, &state.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding bill state: %w", err)
	}
	return state, nil
}

func (r *billStateRepository) FindBillStatesByCards(ctx context.Context, cardIDs []string, period domain.Period) (map[string]domain.BillPeriodState, error) {
	states := make(map[string]domain.BillPeriodState)
	if len(cardIDs) == 0 {
		return states, nil
	}

	query := `
		SELECT
			bill_state_id, card_id, user_id, month, year, is_paid, extra_value,
			created_at, created_by, last_updated_at, last_updated_by
		FROM bill_period_states
		WHERE card_id = ANY($1) AND month = $2 AND year = $3
	`
	rows, err := r.pool.Query(ctx, query, cardIDs, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("error listing bill states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state domain.BillPeriodState
		if err := rows.Scan(
			&state.BillStateID, &state.CardID, &state.UserID, &state.Period.Month, &state.Period.Year,
			&state.IsPaid, &state.ExtraValue,
			&state.CreatedAt, &state.CreatedBy, &state.LastUpdatedAt, &state.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning bill state row: %w", err)
		}
		states[state.CardID] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill state rows: %w", err)
	}
	return states, nil
}

func (r *billStateRepository) UpdateBillState(ctx context.Context, state domain.BillPeriodState) error {
	query := `
		UPDATE bill_period_states
		SET is_paid = $2, extra_value = $3, last_updated_at = $4, last_updated_by = $5
		WHERE bill_state_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		state.BillStateID, state.IsPaid, state.ExtraValue, state.LastUpdatedAt, state.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating bill state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
