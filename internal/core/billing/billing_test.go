package billing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/parcelado-app/parcelado_backend/internal/core/billing"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(total string, installments int, start domain.Period) domain.InstallmentPurchase {
	return domain.InstallmentPurchase{
		PurchaseID:        uuid.NewString(),
		CardID:            uuid.NewString(),
		Description:       "test purchase",
		TotalValue:        decimal.RequireFromString(total),
		TotalInstallments: installments,
		Start:             start,
	}
}

func TestInstallmentIndex(t *testing.T) {
	start := domain.Period{Month: 0, Year: 2024} // Jan 2024
	p := purchase("1200.00", 12, start)

	tests := []struct {
		name string
		view domain.Period
		want int
	}{
		{"start period", domain.Period{Month: 0, Year: 2024}, 1},
		{"sixth month", domain.Period{Month: 5, Year: 2024}, 6},
		{"last installment", domain.Period{Month: 11, Year: 2024}, 12},
		{"one past the end", domain.Period{Month: 0, Year: 2025}, 13},
		{"one before start", domain.Period{Month: 11, Year: 2023}, 0},
		{"year before start", domain.Period{Month: 0, Year: 2023}, -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.InstallmentIndex(p, tt.view))
		})
	}
}

func TestIsActive_ExactWindow(t *testing.T) {
	start := domain.Period{Month: 9, Year: 2023} // Oct 2023, crosses a year boundary
	p := purchase("600.00", 6, start)

	// Inactive in every period before the start.
	v := start.Previous()
	for i := 0; i < 24; i++ {
		assert.False(t, billing.IsActive(p, v), "should be inactive at %s", v)
		v = v.Previous()
	}

	// Active in exactly TotalInstallments consecutive periods.
	v = start
	for i := 1; i <= p.TotalInstallments; i++ {
		assert.True(t, billing.IsActive(p, v), "should be active at %s", v)
		assert.Equal(t, i, billing.InstallmentIndex(p, v))
		v = v.Next()
	}

	// Inactive in every period after the window.
	for i := 0; i < 24; i++ {
		assert.False(t, billing.IsActive(p, v), "should be inactive at %s", v)
		v = v.Next()
	}
}

func TestPerInstallmentValue_EqualDivision(t *testing.T) {
	p := purchase("1200.00", 12, domain.Period{Month: 0, Year: 2024})
	assert.True(t, billing.PerInstallmentValue(p).Equal(decimal.RequireFromString("100.00")),
		"got %s", billing.PerInstallmentValue(p))
}

func TestPerInstallmentValue_ReconstructsTotalWithinTolerance(t *testing.T) {
	// Equal division can leave a sub-cent remainder that is not redistributed
	// to the final installment; the reconstruction must stay within one cent
	// per installment.
	tests := []struct {
		total        string
		installments int
	}{
		{"1200.00", 12},
		{"100.00", 3},
		{"999.99", 7},
		{"0.01", 2},
		{"350.75", 11},
	}

	for _, tt := range tests {
		p := purchase(tt.total, tt.installments, domain.Period{Month: 0, Year: 2024})
		reconstructed := billing.PerInstallmentValue(p).
			Round(2).
			Mul(decimal.NewFromInt(int64(tt.installments)))
		diff := reconstructed.Sub(p.TotalValue).Abs()
		tolerance := decimal.RequireFromString("0.01").Mul(decimal.NewFromInt(int64(tt.installments)))
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"total %s / %d: reconstructed %s, diff %s", tt.total, tt.installments, reconstructed, diff)
	}
}

func TestRemainingDebt(t *testing.T) {
	start := domain.Period{Month: 0, Year: 2024}
	p := purchase("1200.00", 12, start)

	tests := []struct {
		name string
		view domain.Period
		want string
	}{
		{"viewing the start period owes the full total", domain.Period{Month: 0, Year: 2024}, "1200.00"},
		{"viewing June owes seven installments", domain.Period{Month: 5, Year: 2024}, "700.00"},
		{"viewing the final installment owes one", domain.Period{Month: 11, Year: 2024}, "100.00"},
		{"finished purchase owes nothing", domain.Period{Month: 0, Year: 2025}, "0"},
		{"not-yet-started purchase owes nothing", domain.Period{Month: 11, Year: 2023}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, billing.RemainingDebt(p, tt.view).Equal(decimal.RequireFromString(tt.want)),
				"got %s", billing.RemainingDebt(p, tt.view))
		})
	}
}

func TestRemainingDebt_NonIncreasingMonthByMonth(t *testing.T) {
	start := domain.Period{Month: 6, Year: 2024}
	p := purchase("987.65", 9, start)

	prev := billing.RemainingDebt(p, start)
	v := start.Next()
	for i := 0; i < p.TotalInstallments+3; i++ {
		cur := billing.RemainingDebt(p, v)
		assert.True(t, cur.LessThanOrEqual(prev), "debt grew from %s to %s at %s", prev, cur, v)
		prev = cur
		v = v.Next()
	}
	// The period after the last installment owes zero.
	after := start
	for i := 1; i < p.TotalInstallments; i++ {
		after = after.Next()
	}
	assert.True(t, billing.RemainingDebt(p, after.Next()).IsZero())
}

func TestComputeStatement(t *testing.T) {
	card := domain.CreditCard{CardID: uuid.NewString(), BankName: "Nubank"}
	view := domain.Period{Month: 5, Year: 2024} // Jun 2024

	active := purchase("1200.00", 12, domain.Period{Month: 0, Year: 2024}) // installment 6
	finished := purchase("300.00", 3, domain.Period{Month: 0, Year: 2023})
	future := purchase("500.00", 5, domain.Period{Month: 8, Year: 2024})

	t.Run("only active purchases contribute", func(t *testing.T) {
		st := billing.ComputeStatement(card, []domain.InstallmentPurchase{active, finished, future}, nil, view)

		require.Len(t, st.Items, 1)
		assert.Equal(t, 6, st.Items[0].CurrentInstallment)
		assert.True(t, st.MonthlyDue.Equal(decimal.RequireFromString("100.00")), "got %s", st.MonthlyDue)
		assert.True(t, st.RemainingDebt.Equal(decimal.RequireFromString("700.00")), "got %s", st.RemainingDebt)
		assert.False(t, st.IsPaid)
	})

	t.Run("extra value adds to the due but not to the debt", func(t *testing.T) {
		state := &domain.BillPeriodState{
			CardID:     card.CardID,
			Period:     view,
			IsPaid:     true,
			ExtraValue: decimal.RequireFromString("50.00"),
		}
		st := billing.ComputeStatement(card, []domain.InstallmentPurchase{active}, state, view)

		assert.True(t, st.MonthlyDue.Equal(decimal.RequireFromString("150.00")), "got %s", st.MonthlyDue)
		assert.True(t, st.RemainingDebt.Equal(decimal.RequireFromString("700.00")), "got %s", st.RemainingDebt)
		assert.True(t, st.IsPaid)
	})

	t.Run("card with no purchases and no state yields zeros", func(t *testing.T) {
		st := billing.ComputeStatement(card, nil, nil, view)

		assert.Empty(t, st.Items)
		assert.True(t, st.MonthlyDue.IsZero())
		assert.True(t, st.RemainingDebt.IsZero())
		assert.True(t, st.ExtraValue.IsZero())
		assert.False(t, st.IsPaid)
	})
}

func TestSummarize(t *testing.T) {
	view := domain.Period{Month: 2, Year: 2024}

	t.Run("balance is salary minus total due", func(t *testing.T) {
		statements := []domain.CardStatement{
			{Period: view, MonthlyDue: decimal.RequireFromString("3000.00"), RemainingDebt: decimal.RequireFromString("9000.00")},
		}
		expenses := []domain.Expense{
			{Value: decimal.RequireFromString("200.00"), Period: view},
		}
		sum := billing.Summarize(view, statements, expenses, decimal.RequireFromString("5000.00"))

		assert.True(t, sum.TotalDue.Equal(decimal.RequireFromString("3200.00")), "got %s", sum.TotalDue)
		assert.True(t, sum.Balance.Equal(decimal.RequireFromString("1800.00")), "got %s", sum.Balance)
		assert.True(t, sum.TotalDebt.Equal(decimal.RequireFromString("9000.00")), "got %s", sum.TotalDebt)
	})

	t.Run("pending due only counts unpaid cards", func(t *testing.T) {
		statements := []domain.CardStatement{
			{Period: view, MonthlyDue: decimal.RequireFromString("400.00"), IsPaid: true},
			{Period: view, MonthlyDue: decimal.RequireFromString("600.00"), IsPaid: false},
		}
		sum := billing.Summarize(view, statements, nil, decimal.Zero)

		assert.True(t, sum.TotalDue.Equal(decimal.RequireFromString("1000.00")), "got %s", sum.TotalDue)
		assert.True(t, sum.PendingDue.Equal(decimal.RequireFromString("600.00")), "got %s", sum.PendingDue)
	})

	t.Run("empty portfolio is all zeros", func(t *testing.T) {
		sum := billing.Summarize(view, nil, nil, decimal.Zero)

		assert.True(t, sum.TotalDue.IsZero())
		assert.True(t, sum.PendingDue.IsZero())
		assert.True(t, sum.TotalDebt.IsZero())
		assert.True(t, sum.Balance.IsZero())
	})
}

func TestMalformedPurchasePanics(t *testing.T) {
	bad := purchase("100.00", 0, domain.Period{Month: 0, Year: 2024})
	assert.Panics(t, func() {
		billing.PerInstallmentValue(bad)
	})
}
