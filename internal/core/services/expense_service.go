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

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: repo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, userID string, period domain.Period, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if !req.Value.IsPositive() {
		err := fmt.Errorf("%w: expense value must be positive, got %s", apperrors.ErrValidation, req.Value)
		s.LogError(ctx, err, "Rejected non-positive expense value")
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Description: req.Description,
		Value:       req.Value,
		Period:      period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("period", period.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to list expenses for period %s: %w", period, err)
	}

	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID",
				slog.String("expense_id", expenseID))
		}
		return err
	}

	if expense.UserID != userID {
		s.LogDebug(ctx, "Expense found but belongs to different user",
			slog.String("expense_id", expenseID))
		return apperrors.ErrNotFound
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("expense_id", expenseID))
	return nil
}
