package dto

import (
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementItemResponse is one installment purchase as it appears on a
// card's bill for the viewed period.
type StatementItemResponse struct {
	Purchase           PurchaseResponse `json:"purchase"`
	CurrentInstallment int              `json:"currentInstallment"`
	InstallmentValue   decimal.Decimal  `json:"installmentValue"`
	RemainingDebt      decimal.Decimal  `json:"remainingDebt"`
}

// CardStatementResponse is the derived bill of one card for one period.
type CardStatementResponse struct {
	Card          CardResponse            `json:"card"`
	Period        PeriodResponse          `json:"period"`
	Items         []StatementItemResponse `json:"items"`
	MonthlyDue    decimal.Decimal         `json:"monthlyDue"`
	RemainingDebt decimal.Decimal         `json:"remainingDebt"`
	ExtraValue    decimal.Decimal         `json:"extraValue"`
	IsPaid        bool                    `json:"isPaid"`
}

// ToCardStatementResponse converts a domain.CardStatement to its DTO,
// rounding currency values to two fraction digits at the boundary.
func ToCardStatementResponse(st *domain.CardStatement) CardStatementResponse {
	items := make([]StatementItemResponse, len(st.Items))
	for i, item := range st.Items {
		items[i] = StatementItemResponse{
			Purchase:           ToPurchaseResponse(&item.Purchase),
			CurrentInstallment: item.CurrentInstallment,
			InstallmentValue:   item.InstallmentValue.Round(2),
			RemainingDebt:      item.RemainingDebt.Round(2),
		}
	}
	return CardStatementResponse{
		Card:          ToCardResponse(&st.Card),
		Period:        ToPeriodResponse(st.Period),
		Items:         items,
		MonthlyDue:    st.MonthlyDue.Round(2),
		RemainingDebt: st.RemainingDebt.Round(2),
		ExtraValue:    st.ExtraValue.Round(2),
		IsPaid:        st.IsPaid,
	}
}

// PortfolioSummaryResponse rolls the period's statements and expenses into
// portfolio totals against the salary.
type PortfolioSummaryResponse struct {
	Period     PeriodResponse          `json:"period"`
	Statements []CardStatementResponse `json:"statements"`
	Expenses   []ExpenseResponse       `json:"expenses"`
	Salary     decimal.Decimal         `json:"salary"`
	TotalDue   decimal.Decimal         `json:"totalDue"`
	PendingDue decimal.Decimal         `json:"pendingDue"`
	TotalDebt  decimal.Decimal         `json:"totalDebt"`
	Balance    decimal.Decimal         `json:"balance"`
}

// ToPortfolioSummaryResponse converts a domain.PortfolioSummary to its DTO.
func ToPortfolioSummaryResponse(sum *domain.PortfolioSummary) PortfolioSummaryResponse {
	statements := make([]CardStatementResponse, len(sum.Statements))
	for i := range sum.Statements {
		statements[i] = ToCardStatementResponse(&sum.Statements[i])
	}
	expenses := make([]ExpenseResponse, len(sum.Expenses))
	for i := range sum.Expenses {
		expenses[i] = ToExpenseResponse(&sum.Expenses[i])
	}
	return PortfolioSummaryResponse{
		Period:     ToPeriodResponse(sum.Period),
		Statements: statements,
		Expenses:   expenses,
		Salary:     sum.Salary.Round(2),
		TotalDue:   sum.TotalDue.Round(2),
		PendingDue: sum.PendingDue.Round(2),
		TotalDebt:  sum.TotalDebt.Round(2),
		Balance:    sum.Balance.Round(2),
	}
}
