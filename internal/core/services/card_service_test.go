package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/core/services"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCardRepository is a mock type for the CardRepositoryFacade interface
type MockCardRepository struct {
	mock.Mock
}

// --- Implement mock methods for CardRepositoryFacade ---

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCardRepository) ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCardRepository
	service  portssvc.CardSvcFacade
}

func (suite *CardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCardRepository)
	suite.service = services.NewCardService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CardServiceTestSuite) TestCreateCard_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateCardRequest{BankName: "Nubank"}

	suite.mockRepo.On("SaveCard", ctx, mock.AnythingOfType("domain.CreditCard")).Return(nil).Once()

	card, err := suite.service.CreateCard(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(card)
	suite.NotEmpty(card.CardID)
	suite.Equal(userID, card.UserID)
	suite.Equal(req.BankName, card.BankName)
	suite.Equal(userID, card.CreatedBy)
	suite.Equal(userID, card.LastUpdatedBy)
	suite.WithinDuration(time.Now(), card.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestCreateCard_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateCardRequest{BankName: "Itau"}
	dbErr := fmt.Errorf("db connection lost")

	suite.mockRepo.On("SaveCard", ctx, mock.AnythingOfType("domain.CreditCard")).Return(dbErr).Once()

	card, err := suite.service.CreateCard(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, dbErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestGetCardByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	cardID := uuid.NewString()

	suite.mockRepo.On("FindCardByID", ctx, cardID).Return(nil, apperrors.ErrNotFound).Once()

	card, err := suite.service.GetCardByID(ctx, userID, cardID)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestGetCardByID_OtherUserLooksNotFound() {
	ctx := context.Background()
	cardID := uuid.NewString()
	owner := uuid.NewString()
	stranger := uuid.NewString()
	card := &domain.CreditCard{CardID: cardID, UserID: owner, BankName: "Bradesco"}

	suite.mockRepo.On("FindCardByID", ctx, cardID).Return(card, nil).Once()

	found, err := suite.service.GetCardByID(ctx, stranger, cardID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestListCards_EmptyWhenRepoReturnsNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListCards", ctx, userID).Return([]domain.CreditCard(nil), nil).Once()

	cards, err := suite.service.ListCards(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(cards)
	suite.Empty(cards)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestUpdateCard_RenamesBank() {
	ctx := context.Background()
	userID := uuid.NewString()
	cardID := uuid.NewString()
	existing := &domain.CreditCard{CardID: cardID, UserID: userID, BankName: "Old Bank"}
	newName := "New Bank"
	req := dto.UpdateCardRequest{BankName: &newName}

	suite.mockRepo.On("FindCardByID", ctx, cardID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCard", ctx, mock.MatchedBy(func(c domain.CreditCard) bool {
		return c.CardID == cardID && c.BankName == newName
	})).Return(nil).Once()

	card, err := suite.service.UpdateCard(ctx, userID, cardID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(card)
	suite.Equal(newName, card.BankName)
	suite.Equal(userID, card.LastUpdatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestUpdateCard_NoFieldsIsNoop() {
	ctx := context.Background()
	userID := uuid.NewString()
	cardID := uuid.NewString()
	existing := &domain.CreditCard{CardID: cardID, UserID: userID, BankName: "Same Bank"}

	suite.mockRepo.On("FindCardByID", ctx, cardID).Return(existing, nil).Once()

	card, err := suite.service.UpdateCard(ctx, userID, cardID, dto.UpdateCardRequest{})

	suite.Require().NoError(err)
	suite.Equal("Same Bank", card.BankName)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCard", mock.Anything, mock.Anything)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestDeleteCard_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	cardID := uuid.NewString()
	existing := &domain.CreditCard{CardID: cardID, UserID: userID, BankName: "Santander"}

	suite.mockRepo.On("FindCardByID", ctx, cardID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteCard", ctx, cardID).Return(nil).Once()

	err := suite.service.DeleteCard(ctx, userID, cardID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}
