package domain

import (
	"github.com/shopspring/decimal"
)

// InstallmentPurchase is a purchase whose total value is split into equal
// dues across a fixed number of consecutive billing periods, starting at
// Start. Records are immutable after creation; only the start period, the
// installment count and the total value are stored, and everything else
// (current installment, due, remaining debt) is derived per query.
type InstallmentPurchase struct {
	PurchaseID        string          `json:"purchaseID"` // Primary key (UUID)
	CardID            string          `json:"cardID"`     // FK -> credit_cards.card_id
	UserID            string          `json:"userID"`
	Description       string          `json:"description"`
	TotalValue        decimal.Decimal `json:"totalValue"`        // > 0
	TotalInstallments int             `json:"totalInstallments"` // >= 1
	Start             Period          `json:"start"`
	AuditFields
}

// WellFormed reports whether the purchase satisfies the stored-record
// invariants. Repositories only persist well-formed purchases, so a false
// result downstream is a caller defect.
func (p InstallmentPurchase) WellFormed() bool {
	return p.TotalInstallments >= 1 && p.TotalValue.IsPositive() && p.Start.Valid()
}
