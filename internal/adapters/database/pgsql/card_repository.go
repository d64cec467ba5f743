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

type cardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new repository for credit card data.
func NewCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &cardRepository{pool: pool}
}

func (r *cardRepository) SaveCard(ctx context.Context, card domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (
			card_id, user_id, bank_name,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		card.CardID, card.UserID, card.BankName,
		card.CreatedAt, card.CreatedBy, card.LastUpdatedAt, card.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting card: %w", err)
	}
	return nil
}

func (r *cardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.CreditCard, error) {
	query := `
		SELECT
			card_id, user_id, bank_name,
			created_at, created_by, last_updated_at, last_updated_by
		FROM credit_cards
		WHERE card_id = $1
	`
	card := &domain.CreditCard{}
	err := r.pool.QueryRow(ctx, query, cardID).Scan(
		&card.CardID, &card.UserID, &card.BankName,
		&card.CreatedAt, &card.CreatedBy, &card.LastUpdatedAt, &card.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding card: %w", err)
	}
	return card, nil
}

func (r *cardRepository) ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	query := `
		SELECT
			card_id, user_id, bank_name,
			created_at, created_by, last_updated_at, last_updated_by
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.CreditCard
	for rows.Next() {
		var card domain.CreditCard
		if err := rows.Scan(
			&card.CardID, &card.UserID, &card.BankName,
			&card.CreatedAt, &card.CreatedBy, &card.LastUpdatedAt, &card.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) UpdateCard(ctx context.Context, card domain.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET bank_name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE card_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		card.CardID, card.BankName, card.LastUpdatedAt, card.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *cardRepository) DeleteCard(ctx context.Context, cardID string) error {
	// Purchases and bill states are removed by ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM credit_cards WHERE card_id = $1`, cardID)
	if err != nil {
		return fmt.Errorf("error deleting card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
