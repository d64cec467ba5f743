package dto

import (
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to add an installment
// purchase to a card. The start period arrives in calendar (1-12) form.
type CreatePurchaseRequest struct {
	Description       string          `json:"description" binding:"required"`
	TotalValue        decimal.Decimal `json:"totalValue" binding:"required"`
	TotalInstallments int             `json:"totalInstallments" binding:"required,min=1"`
	StartMonth        int             `json:"startMonth" binding:"required,calmonth"`
	StartYear         int             `json:"startYear" binding:"required"`
}

// PurchaseResponse defines the data returned for an installment purchase.
// Currency values carry two fraction digits on the wire.
type PurchaseResponse struct {
	PurchaseID        string          `json:"purchaseID"`
	CardID            string          `json:"cardID"`
	Description       string          `json:"description"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	TotalInstallments int             `json:"totalInstallments"`
	Start             PeriodResponse  `json:"start"`
}

// ToPurchaseResponse converts a domain.InstallmentPurchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.InstallmentPurchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:        p.PurchaseID,
		CardID:            p.CardID,
		Description:       p.Description,
		TotalValue:        p.TotalValue.Round(2),
		TotalInstallments: p.TotalInstallments,
		Start:             ToPeriodResponse(p.Start),
	}
}

// ListPurchasesResponse wraps the list of purchases of one card.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}
