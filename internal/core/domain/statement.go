package domain

import (
	"github.com/shopspring/decimal"
)

// StatementItem is one installment purchase as it appears on a card's bill
// for a given viewing period.
type StatementItem struct {
	Purchase           InstallmentPurchase `json:"purchase"`
	CurrentInstallment int                 `json:"currentInstallment"` // 1-based
	InstallmentValue   decimal.Decimal     `json:"installmentValue"`
	RemainingDebt      decimal.Decimal     `json:"remainingDebt"`
}

// CardStatement is the derived view of one card for one viewing period:
// which purchases are active, what the month's due is and how much debt
// remains. It carries no stored state of its own.
type CardStatement struct {
	Card          CreditCard      `json:"card"`
	Period        Period          `json:"period"`
	Items         []StatementItem `json:"items"`
	MonthlyDue    decimal.Decimal `json:"monthlyDue"`    // active installments + extra value
	RemainingDebt decimal.Decimal `json:"remainingDebt"` // active installments only
	ExtraValue    decimal.Decimal `json:"extraValue"`
	IsPaid        bool            `json:"isPaid"`
}

// PortfolioSummary rolls the per-card statements and the period's standalone
// expenses into portfolio totals against the salary.
type PortfolioSummary struct {
	Period     Period          `json:"period"`
	Statements []CardStatement `json:"statements"`
	Expenses   []Expense       `json:"expenses"`
	Salary     decimal.Decimal `json:"salary"`
	TotalDue   decimal.Decimal `json:"totalDue"`   // card dues + expenses
	PendingDue decimal.Decimal `json:"pendingDue"` // dues of unpaid cards
	TotalDebt  decimal.Decimal `json:"totalDebt"`
	Balance    decimal.Decimal `json:"balance"` // salary - totalDue
}
