// Package billing derives installment activity, monthly dues and remaining
// debt from stored records and a viewing period. Everything here is pure
// arithmetic over a snapshot: no I/O, no wall clock, no cached state, so a
// recomputation for the same inputs always yields the same result.
package billing

import (
	"fmt"

	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentIndex returns the 1-based installment number of purchase p when
// viewed at period v. Index 1 is the start period; values below 1 mean the
// purchase has not started, values above p.TotalInstallments mean it has
// finished.
func InstallmentIndex(p domain.InstallmentPurchase, v domain.Period) int {
	return v.MonthsSince(p.Start) + 1
}

// IsActive reports whether purchase p contributes to the bill of period v.
// A purchase is active in exactly TotalInstallments consecutive periods
// starting at its start period.
func IsActive(p domain.InstallmentPurchase, v domain.Period) bool {
	idx := InstallmentIndex(p, v)
	return idx >= 1 && idx <= p.TotalInstallments
}

// PerInstallmentValue returns the equal per-period due of purchase p.
// The total is divided evenly across all installments; a sub-cent rounding
// remainder is not redistributed to the final installment.
func PerInstallmentValue(p domain.InstallmentPurchase) decimal.Decimal {
	assertWellFormed(p)
	return p.TotalValue.Div(decimal.NewFromInt(int64(p.TotalInstallments)))
}

// RemainingDebt returns the sum of the not-yet-incurred installments of p as
// of period v, the current one included. Inactive purchases owe nothing.
func RemainingDebt(p domain.InstallmentPurchase, v domain.Period) decimal.Decimal {
	if !IsActive(p, v) {
		return decimal.Zero
	}
	remaining := p.TotalInstallments - InstallmentIndex(p, v) + 1
	return PerInstallmentValue(p).Mul(decimal.NewFromInt(int64(remaining)))
}

// ComputeStatement derives the bill of one card for period v from the card's
// purchases and its optional manual bill state. Purchases outside their
// active window are excluded entirely. The manual extra value is an additive
// term on the monthly due only; it never enters the remaining debt.
func ComputeStatement(card domain.CreditCard, purchases []domain.InstallmentPurchase, state *domain.BillPeriodState, v domain.Period) domain.CardStatement {
	st := domain.CardStatement{
		Card:          card,
		Period:        v,
		Items:         []domain.StatementItem{},
		MonthlyDue:    decimal.Zero,
		RemainingDebt: decimal.Zero,
		ExtraValue:    decimal.Zero,
	}

	for _, p := range purchases {
		if !IsActive(p, v) {
			continue
		}
		item := domain.StatementItem{
			Purchase:           p,
			CurrentInstallment: InstallmentIndex(p, v),
			InstallmentValue:   PerInstallmentValue(p),
			RemainingDebt:      RemainingDebt(p, v),
		}
		st.Items = append(st.Items, item)
		st.MonthlyDue = st.MonthlyDue.Add(item.InstallmentValue)
		st.RemainingDebt = st.RemainingDebt.Add(item.RemainingDebt)
	}

	if state != nil {
		st.ExtraValue = state.ExtraValue
		st.MonthlyDue = st.MonthlyDue.Add(state.ExtraValue)
		st.IsPaid = state.IsPaid
	}

	return st
}

// Summarize rolls per-card statements and the period's standalone expenses
// into portfolio totals. Plain decimal addition keeps the result independent
// of iteration order.
func Summarize(v domain.Period, statements []domain.CardStatement, expenses []domain.Expense, salary decimal.Decimal) domain.PortfolioSummary {
	sum := domain.PortfolioSummary{
		Period:     v,
		Statements: statements,
		Expenses:   expenses,
		Salary:     salary,
		TotalDue:   decimal.Zero,
		PendingDue: decimal.Zero,
		TotalDebt:  decimal.Zero,
	}

	for _, st := range statements {
		sum.TotalDue = sum.TotalDue.Add(st.MonthlyDue)
		sum.TotalDebt = sum.TotalDebt.Add(st.RemainingDebt)
		if !st.IsPaid {
			sum.PendingDue = sum.PendingDue.Add(st.MonthlyDue)
		}
	}
	for _, e := range expenses {
		sum.TotalDue = sum.TotalDue.Add(e.Value)
	}
	sum.Balance = salary.Sub(sum.TotalDue)

	return sum
}

// assertWellFormed fails fast on records that should never have reached the
// engine: repositories only persist validated purchases, so a malformed one
// here is a caller defect, not an input error.
func assertWellFormed(p domain.InstallmentPurchase) {
	if !p.WellFormed() {
		panic(fmt.Sprintf("billing: malformed installment purchase %s (installments=%d, total=%s)",
			p.PurchaseID, p.TotalInstallments, p.TotalValue))
	}
}
