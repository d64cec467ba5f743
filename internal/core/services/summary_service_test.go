package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockStatementReaderSvc is a mock type for the StatementReaderSvc interface
type MockStatementReaderSvc struct {
	mock.Mock
}

func (m *MockStatementReaderSvc) GetCardStatement(ctx context.Context, userID string, cardID string, period domain.Period) (*domain.CardStatement, error) {
	args := m.Called(ctx, userID, cardID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardStatement), args.Error(1)
}

func (m *MockStatementReaderSvc) ListCardStatements(ctx context.Context, userID string, period domain.Period) ([]domain.CardStatement, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardStatement), args.Error(1)
}

// MockExpenseReaderSvc is a mock type for the ExpenseReaderSvc interface
type MockExpenseReaderSvc struct {
	mock.Mock
}

func (m *MockExpenseReaderSvc) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// MockProfileSvc is a mock type for the ProfileSvcFacade interface
type MockProfileSvc struct {
	mock.Mock
}

func (m *MockProfileSvc) GetSalary(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProfileSvc) UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) (*domain.Profile, error) {
	args := m.Called(ctx, userID, salary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Test Suite Setup ---

type SummaryServiceTestSuite struct {
	suite.Suite
	mockStatementSvc *MockStatementReaderSvc
	mockExpenseSvc   *MockExpenseReaderSvc
	mockProfileSvc   *MockProfileSvc
	service          portssvc.SummaryReaderSvc

	userID string
	period domain.Period
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockStatementSvc = new(MockStatementReaderSvc)
	suite.mockExpenseSvc = new(MockExpenseReaderSvc)
	suite.mockProfileSvc = new(MockProfileSvc)
	suite.service = services.NewSummaryService(suite.mockStatementSvc, suite.mockExpenseSvc, suite.mockProfileSvc)

	suite.userID = uuid.NewString()
	suite.period = domain.Period{Month: 6, Year: 2024} // July 2024
}

// --- Test Cases ---

func (suite *SummaryServiceTestSuite) TestGetPortfolioSummary_RollsUpTotals() {
	ctx := context.Background()
	statements := []domain.CardStatement{
		{
			Card:          domain.CreditCard{CardID: uuid.NewString(), UserID: suite.userID, BankName: "Nubank"},
			Period:        suite.period,
			MonthlyDue:    decimal.RequireFromString("600"),
			RemainingDebt: decimal.RequireFromString("2400"),
			IsPaid:        true,
		},
		{
			Card:          domain.CreditCard{CardID: uuid.NewString(), UserID: suite.userID, BankName: "Inter"},
			Period:        suite.period,
			MonthlyDue:    decimal.RequireFromString("400"),
			RemainingDebt: decimal.RequireFromString("800"),
			IsPaid:        false,
		},
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), UserID: suite.userID, Description: "rent", Value: decimal.RequireFromString("2000"), Period: suite.period},
		{ExpenseID: uuid.NewString(), UserID: suite.userID, Description: "internet", Value: decimal.RequireFromString("200"), Period: suite.period},
	}
	salary := decimal.RequireFromString("5000")

	suite.mockStatementSvc.On("ListCardStatements", ctx, suite.userID, suite.period).Return(statements, nil).Once()
	suite.mockExpenseSvc.On("ListExpenses", ctx, suite.userID, suite.period).Return(expenses, nil).Once()
	suite.mockProfileSvc.On("GetSalary", ctx, suite.userID).Return(salary, nil).Once()

	summary, err := suite.service.GetPortfolioSummary(ctx, suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.TotalDue.Equal(decimal.RequireFromString("3200"))) // 600+400 dues + 2200 expenses
	suite.True(summary.PendingDue.Equal(decimal.RequireFromString("400")))
	suite.True(summary.TotalDebt.Equal(decimal.RequireFromString("3200")))
	suite.True(summary.Balance.Equal(decimal.RequireFromString("1800"))) // 5000 - 3200

	suite.mockStatementSvc.AssertExpectations(suite.T())
	suite.mockExpenseSvc.AssertExpectations(suite.T())
	suite.mockProfileSvc.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetPortfolioSummary_EmptyPortfolio() {
	ctx := context.Background()

	suite.mockStatementSvc.On("ListCardStatements", ctx, suite.userID, suite.period).Return([]domain.CardStatement{}, nil).Once()
	suite.mockExpenseSvc.On("ListExpenses", ctx, suite.userID, suite.period).Return([]domain.Expense{}, nil).Once()
	suite.mockProfileSvc.On("GetSalary", ctx, suite.userID).Return(decimal.Zero, nil).Once()

	summary, err := suite.service.GetPortfolioSummary(ctx, suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(summary.TotalDue.IsZero())
	suite.True(summary.PendingDue.IsZero())
	suite.True(summary.TotalDebt.IsZero())
	suite.True(summary.Balance.IsZero())
}

// --- Run Suite ---

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
