package domain

import (
	"github.com/shopspring/decimal"
)

// BillPeriodState is the manual per-(card, period) bill state: whether the
// bill was marked paid and the cumulative extra value charged by hand. At
// most one row exists per (card, period); it is created lazily on the first
// toggle or extra-value addition and mutated in place from then on. Extra
// value never amortizes and stays separate from installment math.
type BillPeriodState struct {
	BillStateID string          `json:"billStateID"` // Primary key (UUID)
	CardID      string          `json:"cardID"`      // FK -> credit_cards.card_id
	UserID      string          `json:"userID"`
	Period      Period          `json:"period"`
	IsPaid      bool            `json:"isPaid"`
	ExtraValue  decimal.Decimal `json:"extraValue"` // >= 0, cumulative
	AuditFields
}
