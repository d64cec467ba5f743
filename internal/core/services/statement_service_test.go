package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesByCards(ctx context.Context, cardIDs []string) ([]domain.InstallmentPurchase, error) {
	args := m.Called(ctx, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstallmentPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.InstallmentPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type StatementServiceTestSuite struct {
	suite.Suite
	mockCardRepo      *MockCardRepository
	mockPurchaseRepo  *MockPurchaseRepository
	mockBillStateRepo *MockBillStateRepository
	service           portssvc.StatementReaderSvc

	userID string
	cardID string
	period domain.Period
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockCardRepo = new(MockCardRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockBillStateRepo = new(MockBillStateRepository)
	suite.service = services.NewStatementService(suite.mockCardRepo, suite.mockPurchaseRepo, suite.mockBillStateRepo)

	suite.userID = uuid.NewString()
	suite.cardID = uuid.NewString()
	suite.period = domain.Period{Month: 2, Year: 2024} // March 2024
}

func (suite *StatementServiceTestSuite) newPurchase(total string, installments int, start domain.Period) domain.InstallmentPurchase {
	return domain.InstallmentPurchase{
		PurchaseID:        uuid.NewString(),
		CardID:            suite.cardID,
		UserID:            suite.userID,
		Description:       "purchase",
		TotalValue:        decimal.RequireFromString(total),
		TotalInstallments: installments,
		Start:             start,
	}
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestGetCardStatement_DerivesDueAndDebt() {
	ctx := context.Background()
	card := &domain.CreditCard{CardID: suite.cardID, UserID: suite.userID, BankName: "Nubank"}

	// 1200 over 12 starting January 2024: March is installment 3, due 100,
	// remaining debt 1000. The second purchase only starts in June.
	active := suite.newPurchase("1200", 12, domain.Period{Month: 0, Year: 2024})
	future := suite.newPurchase("900", 3, domain.Period{Month: 5, Year: 2024})

	suite.mockCardRepo.On("FindCardByID", ctx, suite.cardID).Return(card, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesByCards", ctx, []string{suite.cardID}).
		Return([]domain.InstallmentPurchase{active, future}, nil).Once()
	suite.mockBillStateRepo.On("FindBillState", ctx, suite.cardID, suite.period).
		Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetCardStatement(ctx, suite.userID, suite.cardID, suite.period)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Require().Len(statement.Items, 1)
	suite.Equal(active.PurchaseID, statement.Items[0].Purchase.PurchaseID)
	suite.Equal(3, statement.Items[0].CurrentInstallment)
	suite.True(statement.MonthlyDue.Equal(decimal.RequireFromString("100")))
	suite.True(statement.RemainingDebt.Equal(decimal.RequireFromString("1000")))
	suite.False(statement.IsPaid)
	suite.True(statement.ExtraValue.IsZero())

	suite.mockCardRepo.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockBillStateRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetCardStatement_ExtraValueRaisesDueNotDebt() {
	ctx := context.Background()
	card := &domain.CreditCard{CardID: suite.cardID, UserID: suite.userID, BankName: "Itau"}
	purchase := suite.newPurchase("600", 6, domain.Period{Month: 2, Year: 2024})
	state := &domain.BillPeriodState{
		BillStateID: uuid.NewString(),
		CardID:      suite.cardID,
		UserID:      suite.userID,
		Period:      suite.period,
		IsPaid:      true,
		ExtraValue:  decimal.RequireFromString("45.90"),
	}

	suite.mockCardRepo.On("FindCardByID", ctx, suite.cardID).Return(card, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesByCards", ctx, []string{suite.cardID}).
		Return([]domain.InstallmentPurchase{purchase}, nil).Once()
	suite.mockBillStateRepo.On("FindBillState", ctx, suite.cardID, suite.period).
		Return(state, nil).Once()

	statement, err := suite.service.GetCardStatement(ctx, suite.userID, suite.cardID, suite.period)

	suite.Require().NoError(err)
	suite.True(statement.MonthlyDue.Equal(decimal.RequireFromString("145.90")))
	suite.True(statement.RemainingDebt.Equal(decimal.RequireFromString("600")))
	suite.True(statement.IsPaid)
}

func (suite *StatementServiceTestSuite) TestGetCardStatement_OtherUserLooksNotFound() {
	ctx := context.Background()
	card := &domain.CreditCard{CardID: suite.cardID, UserID: uuid.NewString(), BankName: "Bradesco"}

	suite.mockCardRepo.On("FindCardByID", ctx, suite.cardID).Return(card, nil).Once()

	statement, err := suite.service.GetCardStatement(ctx, suite.userID, suite.cardID, suite.period)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "ListPurchasesByCards", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestListCardStatements_CoversEveryCard() {
	ctx := context.Background()
	otherCardID := uuid.NewString()
	cards := []domain.CreditCard{
		{CardID: suite.cardID, UserID: suite.userID, BankName: "Nubank"},
		{CardID: otherCardID, UserID: suite.userID, BankName: "Inter"},
	}
	purchase := suite.newPurchase("300", 3, domain.Period{Month: 2, Year: 2024})
	states := map[string]domain.BillPeriodState{
		otherCardID: {
			BillStateID: uuid.NewString(),
			CardID:      otherCardID,
			UserID:      suite.userID,
			Period:      suite.period,
			IsPaid:      true,
			ExtraValue:  decimal.Zero,
		},
	}

	suite.mockCardRepo.On("ListCards", ctx, suite.userID).Return(cards, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesByCards", ctx, []string{suite.cardID, otherCardID}).
		Return([]domain.InstallmentPurchase{purchase}, nil).Once()
	suite.mockBillStateRepo.On("FindBillStatesByCards", ctx, []string{suite.cardID, otherCardID}, suite.period).
		Return(states, nil).Once()

	statements, err := suite.service.ListCardStatements(ctx, suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(statements, 2)

	// First card carries the purchase, second only the paid flag.
	suite.True(statements[0].MonthlyDue.Equal(decimal.RequireFromString("100")))
	suite.False(statements[0].IsPaid)
	suite.True(statements[1].MonthlyDue.IsZero())
	suite.True(statements[1].IsPaid)

	suite.mockCardRepo.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockBillStateRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestListCardStatements_NoCards() {
	ctx := context.Background()

	suite.mockCardRepo.On("ListCards", ctx, suite.userID).Return([]domain.CreditCard{}, nil).Once()

	statements, err := suite.service.ListCardStatements(ctx, suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.NotNil(statements)
	suite.Empty(statements)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "ListPurchasesByCards", mock.Anything, mock.Anything)
}

// --- Run Suite ---

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
