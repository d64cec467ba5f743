package dto

import (
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddExtraValueRequest defines the manual charge added to one card's bill
// for the viewed period. The amount must be positive; it accumulates on top
// of any previously added extra value.
type AddExtraValueRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BillStateResponse defines the data returned for a (card, period) bill state.
type BillStateResponse struct {
	CardID     string          `json:"cardID"`
	Period     PeriodResponse  `json:"period"`
	IsPaid     bool            `json:"isPaid"`
	ExtraValue decimal.Decimal `json:"extraValue"`
}

// ToBillStateResponse converts a domain.BillPeriodState to BillStateResponse DTO
func ToBillStateResponse(s *domain.BillPeriodState) BillStateResponse {
	return BillStateResponse{
		CardID:     s.CardID,
		Period:     ToPeriodResponse(s.Period),
		IsPaid:     s.IsPaid,
		ExtraValue: s.ExtraValue.Round(2),
	}
}
