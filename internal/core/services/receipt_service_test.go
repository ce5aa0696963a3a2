package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/core/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo *MockReceiptRepository
	service         portssvc.ReceiptSvcFacade
	userID          string
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.service = services.NewReceiptService(suite.mockReceiptRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_AssignsNumberWhenMissing() {
	ctx := context.Background()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return strings.HasPrefix(r.ReceiptNumber, "RCPT-") && r.UserID == suite.userID
	})).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, suite.userID, dto.CreateReceiptRequest{
		Payer:       "Acme Ltd",
		Amount:      d("150"),
		ReceiptDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(receipt.ReceiptNumber, "RCPT-"))
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_NonPositiveAmountRejected() {
	ctx := context.Background()
	_, err := suite.service.CreateReceipt(ctx, suite.userID, dto.CreateReceiptRequest{
		Payer:       "Acme Ltd",
		Amount:      d("-5"),
		ReceiptDate: time.Now().UTC(),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_GuardsOnLastUpdatedAt() {
	ctx := context.Background()
	receiptID := uuid.NewString()
	loadedAt := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	existing := &domain.Receipt{
		ReceiptID: receiptID,
		UserID:    suite.userID,
		Amount:    d("100"),
		AuditFields: domain.AuditFields{
			LastUpdatedAt: loadedAt,
		},
	}
	suite.mockReceiptRepo.On("FindReceiptByID", ctx, suite.userID, receiptID).Return(existing, nil).Once()
	suite.mockReceiptRepo.On("UpdateReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Amount.Equal(d("175"))
	}), loadedAt).Return(nil).Once()

	amount := d("175")
	receipt, err := suite.service.UpdateReceipt(ctx, suite.userID, receiptID, dto.UpdateReceiptRequest{Amount: &amount})

	suite.Require().NoError(err)
	suite.True(receipt.Amount.Equal(d("175")))
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_ConcurrentEditConflicts() {
	ctx := context.Background()
	receiptID := uuid.NewString()
	existing := &domain.Receipt{ReceiptID: receiptID, UserID: suite.userID, Amount: d("100")}
	suite.mockReceiptRepo.On("FindReceiptByID", ctx, suite.userID, receiptID).Return(existing, nil).Once()
	suite.mockReceiptRepo.On("UpdateReceipt", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	payer := "Someone Else"
	_, err := suite.service.UpdateReceipt(ctx, suite.userID, receiptID, dto.UpdateReceiptRequest{Payer: &payer})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
