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

type purchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository creates a new repository for installment purchase data.
func NewPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &purchaseRepository{pool: pool}
}

func (r *purchaseRepository) SavePurchase(ctx context.Context, purchase domain.InstallmentPurchase) error {
	query := `
		INSERT INTO installment_purchases (
			purchase_id, card_id, user_id, description,
			total_value, total_installments, start_month, start_year,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		purchase.PurchaseID, purchase.CardID, purchase.UserID, purchase.Description,
		purchase.TotalValue, purchase.TotalInstallments, purchase.Start.Month, purchase.Start.Year,
		purchase.CreatedAt, purchase.CreatedBy, purchase.LastUpdatedAt, purchase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting purchase: %w", err)
	}
	return nil
}

func (r *purchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, error) {
	query := `
		SELECT
			purchase_id, card_id, user_id, description,
			total_value, total_installments, start_month, start_year,
			created_at, created_by, last_updated_at, last_updated_by
		FROM installment_purchases
		WHERE purchase_id = $1
	`
	purchase := &domain.InstallmentPurchase{}
	err := r.pool.QueryRow(ctx, query, purchaseID).Scan(
		&purchase.PurchaseID, &purchase.CardID, &purchase.UserID, &purchase.Description,
		&purchase.TotalValue, &purchase.TotalInstallments, &purchase.Start.Month, &purchase.Start.Year,
		&purchase.CreatedAt, &purchase.CreatedBy, &purchase.LastUpdatedAt, &purchase.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding purchase: %w", err)
	}
	return purchase, nil
}

func (r *purchaseRepository) ListPurchasesByCards(ctx context.Context, cardIDs []string) ([]domain.InstallmentPurchase, error) {
	if len(cardIDs) == 0 {
		return []domain.InstallmentPurchase{}, nil
	}

	query := `
		SELECT
			purchase_id, card_id, user_id, description,
			total_value, total_installments, start_month, start_year,
			created_at, created_by, last_updated_at, last_updated_by
		FROM installment_purchases
		WHERE card_id = ANY($1)
		ORDER BY start_year ASC, start_month ASC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.InstallmentPurchase
	for rows.Next() {
		var purchase domain.InstallmentPurchase
		if err := rows.Scan(
			&purchase.PurchaseID, &purchase.CardID, &purchase.UserID, &purchase.Description,
			&purchase.TotalValue, &purchase.TotalInstallments, &purchase.Start.Month, &purchase.Start.Year,
			&purchase.CreatedAt, &purchase.CreatedBy, &purchase.LastUpdatedAt, &purchase.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning purchase row: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM installment_purchases WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return fmt.Errorf("error deleting purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
