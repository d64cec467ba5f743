package services

import (
	"context"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// StatementReaderSvc derives per-card bills for a viewing period. Results are
// recomputed from raw records on every call; nothing derived is cached.
type StatementReaderSvc interface {
	// GetCardStatement derives one card's bill for the period.
	GetCardStatement(ctx context.Context, userID string, cardID string, period domain.Period) (*domain.CardStatement, error)

	// ListCardStatements derives the bills of all the user's cards for the
	// period.
	ListCardStatements(ctx context.Context, userID string, period domain.Period) ([]domain.CardStatement, error)
}

// SummaryReaderSvc rolls per-card statements, standalone expenses and the
// salary into portfolio totals for a viewing period.
type SummaryReaderSvc interface {
	// GetPortfolioSummary derives the portfolio totals for the period.
	GetPortfolioSummary(ctx context.Context, userID string, period domain.Period) (*domain.PortfolioSummary, error)
}
