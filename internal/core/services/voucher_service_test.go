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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockAccountRepo *MockAccountRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.VoucherSvcFacade
	userID          string
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockAccountRepo, suite.mockPaymentRepo)
	suite.userID = uuid.NewString()
}

func (suite *VoucherServiceTestSuite) knownAccounts(ids ...string) {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, UserID: suite.userID}
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, suite.userID, mock.Anything).
		Return(accounts, nil)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DefaultsTotalToDebitLeg() {
	ctx := context.Background()
	suite.knownAccounts("cash", "sales")

	req := dto.CreateVoucherRequest{
		VoucherNumber: "V-001",
		VoucherDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Lines: []dto.CreateVoucherLineRequest{
			{AccountID: "cash", IsDebit: true, Amount: d("500")},
			{AccountID: "sales", IsDebit: false, Amount: d("500")},
		},
	}
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Status == domain.VoucherPending &&
			v.TotalAmount.Equal(d("500")) &&
			v.UserID == suite.userID
	}), mock.MatchedBy(func(lines []domain.VoucherLine) bool {
		return len(lines) == 2 && lines[0].LineNo == 1 && lines[1].LineNo == 2
	})).Return(nil).Once()

	voucher, lines, err := suite.service.CreateVoucher(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherPending, voucher.Status)
	suite.True(voucher.TotalAmount.Equal(d("500")))
	suite.True(domain.IsBalanced(lines))
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownAccountRejected() {
	ctx := context.Background()
	suite.knownAccounts("cash")

	req := dto.CreateVoucherRequest{
		VoucherNumber: "V-002",
		VoucherDate:   time.Now().UTC(),
		Lines: []dto.CreateVoucherLineRequest{
			{AccountID: "cash", IsDebit: true, Amount: d("100")},
			{AccountID: "missing", IsDebit: false, Amount: d("100")},
		},
	}

	_, _, err := suite.service.CreateVoucher(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_NonPositiveAmountRejected() {
	ctx := context.Background()
	suite.knownAccounts("cash")

	req := dto.CreateVoucherRequest{
		VoucherNumber: "V-003",
		VoucherDate:   time.Now().UTC(),
		Lines: []dto.CreateVoucherLineRequest{
			{AccountID: "cash", IsDebit: true, Amount: d("0")},
		},
	}

	_, _, err := suite.service.CreateVoucher(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_PaidVoucherRejectsEdits() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, UserID: suite.userID, Status: domain.VoucherPaid}, nil).Once()

	desc := "amended"
	_, _, err := suite.service.UpdateVoucher(ctx, suite.userID, voucherID, dto.UpdateVoucherRequest{Description: &desc})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_RecomputesStatusAfterWrite() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:   voucherID,
		UserID:      suite.userID,
		Status:      domain.VoucherPartiallyPaid,
		TotalAmount: d("500"),
	}
	updated := &domain.Voucher{
		VoucherID:   voucherID,
		UserID:      suite.userID,
		Status:      domain.VoucherPaid,
		TotalAmount: d("300"),
	}
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("FindVoucherLines", ctx, voucherID).Return([]domain.VoucherLine{}, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.TotalAmount.Equal(d("300"))
	}), mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("RecomputeVoucherStatus", ctx, suite.userID, voucherID).
		Return(domain.VoucherPaid, nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).Return(updated, nil).Once()

	lowered := d("300")
	voucher, _, err := suite.service.UpdateVoucher(ctx, suite.userID, voucherID, dto.UpdateVoucherRequest{TotalAmount: &lowered})

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherPaid, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestVoidVoucher_PaidAllocationsBlockVoid() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, UserID: suite.userID, Status: domain.VoucherPartiallyPaid}, nil).Once()
	suite.mockPaymentRepo.On("PaidTotalForVoucher", ctx, voucherID).Return(d("200"), nil).Once()

	_, err := suite.service.VoidVoucher(ctx, suite.userID, voucherID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestVoidVoucher_UnpaidVoucherVoided() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, UserID: suite.userID, Status: domain.VoucherPending}, nil).Once()
	suite.mockPaymentRepo.On("PaidTotalForVoucher", ctx, voucherID).Return(decimal.Zero, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.userID, voucherID, domain.VoucherVoid, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	voucher, err := suite.service.VoidVoucher(ctx, suite.userID, voucherID)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherVoid, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestVoidVoucher_AlreadyVoidRejected() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.userID, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, UserID: suite.userID, Status: domain.VoucherVoid}, nil).Once()

	_, err := suite.service.VoidVoucher(ctx, suite.userID, voucherID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucherStatus_ReturnsRecomputedStatus() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	suite.mockPaymentRepo.On("RecomputeVoucherStatus", ctx, suite.userID, voucherID).
		Return(domain.VoucherPartiallyPaid, nil).Once()

	status, err := suite.service.UpdateVoucherStatus(ctx, suite.userID, voucherID)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherPartiallyPaid, status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
