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

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new repository for standalone expense data.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, user_id, description, value, month, year,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		expense.ExpenseID, expense.UserID, expense.Description, expense.Value,
		expense.Period.Month, expense.Period.Year,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT
			expense_id, user_id, description, value, month, year,
			created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1
	`
	expense := &domain.Expense{}
	err := r.pool.QueryRow(ctx, query, expenseID).Scan(
		&expense.ExpenseID, &expense.UserID, &expense.Description, &expense.Value,
		&expense.Period.Month, &expense.Period.Year,
		&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding expense: %w", err)
	}
	return expense, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	query := `
		SELECT
			expense_id, user_id, description, value, month, year,
			created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ExpenseID, &expense.UserID, &expense.Description, &expense.Value,
			&expense.Period.Month, &expense.Period.Year,
			&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
