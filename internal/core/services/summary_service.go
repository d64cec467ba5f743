package services

import (
	"context"
	"log/slog"

	"github.com/parcelado-app/parcelado_backend/internal/core/billing"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
)

// summaryService implements SummaryReaderSvc by rolling the period's card
// statements, standalone expenses and the salary into portfolio totals.
type summaryService struct {
	BaseService
	statementService portssvc.StatementReaderSvc
	expenseService   portssvc.ExpenseReaderSvc
	profileService   portssvc.ProfileSvcFacade
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	statementService portssvc.StatementReaderSvc,
	expenseService portssvc.ExpenseReaderSvc,
	profileService portssvc.ProfileSvcFacade,
) portssvc.SummaryReaderSvc {
	return &summaryService{
		statementService: statementService,
		expenseService:   expenseService,
		profileService:   profileService,
	}
}

// Ensure summaryService implements the SummaryReaderSvc interface
var _ portssvc.SummaryReaderSvc = (*summaryService)(nil)

func (s *summaryService) GetPortfolioSummary(ctx context.Context, userID string, period domain.Period) (*domain.PortfolioSummary, error) {
	statements, err := s.statementService.ListCardStatements(ctx, userID, period)
	if err != nil {
		return nil, err // already logged downstream
	}

	expenses, err := s.expenseService.ListExpenses(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	salary, err := s.profileService.GetSalary(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := billing.Summarize(period, statements, expenses, salary)

	s.LogDebug(ctx, "Portfolio summary derived",
		slog.String("period", period.String()),
		slog.Int("card_count", len(statements)),
		slog.Int("expense_count", len(expenses)))
	return &sum, nil
}
