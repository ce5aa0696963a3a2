package services_test

import (
	"context"
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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.PaymentSvcFacade
	userID          string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *PaymentServiceTestSuite) fundingAccount(accountID string) {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).
		Return(&domain.Account{AccountID: accountID, Name: "Bank", AccountType: "Asset"}, nil)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DefaultsToPaidAndAllocationSum() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.fundingAccount(accountID)

	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-001",
		PaymentDate:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Payee:         "Acme Supplies",
		AccountID:     accountID,
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("300")},
		},
	}
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPaid &&
			p.TotalAmount.Equal(d("300")) &&
			p.UserID == suite.userID &&
			p.PaymentNumber == "PMT-001"
	}), mock.MatchedBy(func(lines []domain.PaymentLine) bool {
		return len(lines) == 1 && lines[0].VoucherID == "v1" && lines[0].AmountPaid.Equal(d("300"))
	}), mock.Anything).Return(nil).Once()

	payment, lines, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, payment.Status)
	suite.True(payment.TotalAmount.Equal(d("300")))
	suite.Len(lines, 1)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DraftAgainstFullyPaidVoucherConflicts() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.fundingAccount(accountID)

	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-010",
		PaymentDate:   time.Now().UTC(),
		AccountID:     accountID,
		Status:        string(domain.PaymentDraft),
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("100")},
		},
	}
	// The store rejects allocations against a fully paid voucher even for
	// drafts, so the conflict must reach the caller unchanged.
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentDraft
	}), mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(409, "voucher v1 is already fully paid", apperrors.ErrConflict)).Once()

	_, _, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DuplicateVoucherAllocationRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.fundingAccount(accountID)

	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-002",
		PaymentDate:   time.Now().UTC(),
		AccountID:     accountID,
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("100")},
			{VoucherID: "v1", AmountPaid: d("200")},
		},
	}

	_, _, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DeclaredTotalBelowAllocationsRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.fundingAccount(accountID)

	declared := d("250")
	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-003",
		PaymentDate:   time.Now().UTC(),
		AccountID:     accountID,
		TotalAmount:   &declared,
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("300")},
		},
	}

	_, _, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DeclaredTotalAboveAllocationsKept() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.fundingAccount(accountID)

	declared := d("500")
	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-004",
		PaymentDate:   time.Now().UTC(),
		AccountID:     accountID,
		TotalAmount:   &declared,
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("300")},
		},
	}
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TotalAmount.Equal(d("500"))
	}), mock.Anything, mock.Anything).Return(nil).Once()

	payment, _, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(payment.TotalAmount.Equal(d("500")))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownFundingAccountRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreatePaymentRequest{
		PaymentNumber: "PMT-005",
		PaymentDate:   time.Now().UTC(),
		AccountID:     accountID,
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("100")},
		},
	}

	_, _, err := suite.service.CreatePayment(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_PaidPaymentIsImmutable() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, suite.userID, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, UserID: suite.userID, Status: domain.PaymentPaid}, nil).Once()

	payee := "New Payee"
	_, _, err := suite.service.UpdatePayment(ctx, suite.userID, paymentID, dto.UpdatePaymentRequest{Payee: &payee})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_DraftReplacesAllocations() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, suite.userID, paymentID).
		Return(&domain.Payment{
			PaymentID:   paymentID,
			UserID:      suite.userID,
			Status:      domain.PaymentDraft,
			TotalAmount: d("100"),
		}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentAttachments", ctx, paymentID).
		Return([]domain.PaymentAttachment{}, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TotalAmount.Equal(d("450"))
	}), mock.MatchedBy(func(lines []domain.PaymentLine) bool {
		return len(lines) == 2
	}), mock.Anything).Return(nil).Once()

	req := dto.UpdatePaymentRequest{
		Lines: []dto.CreatePaymentLineRequest{
			{VoucherID: "v1", AmountPaid: d("200")},
			{VoucherID: "v2", AmountPaid: d("250")},
		},
	}
	payment, lines, err := suite.service.UpdatePayment(ctx, suite.userID, paymentID, req)

	suite.Require().NoError(err)
	suite.True(payment.TotalAmount.Equal(d("450")))
	suite.Len(lines, 2)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_PaidPaymentRejected() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, suite.userID, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, UserID: suite.userID, Status: domain.PaymentPaid}, nil).Once()

	err := suite.service.DeletePayment(ctx, suite.userID, paymentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "DeletePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_DraftDeleted() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, suite.userID, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, UserID: suite.userID, Status: domain.PaymentDraft}, nil).Once()
	suite.mockPaymentRepo.On("DeletePayment", ctx, suite.userID, paymentID).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, suite.userID, paymentID)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
