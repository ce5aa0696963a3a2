package services_test

import (
	"context"
	"testing"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/core/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.AccountSvcFacade
	userID            string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockReportingRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_TrimsAndActivates() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNumber: " 1000 ",
		Name:          " Cash ",
		AccountType:   "Current Asset",
	}
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "1000" && a.Name == "Cash" && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("1000", account.AccountNumber)
	suite.True(account.IsActive)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BlankNumberRejected() {
	ctx := context.Background()
	_, err := suite.service.CreateAccount(ctx, suite.userID, dto.CreateAccountRequest{
		AccountNumber: "   ",
		Name:          "Cash",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownParentRejected() {
	ctx := context.Background()
	parentID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, parentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.userID, dto.CreateAccountRequest{
		AccountNumber:   "1100",
		Name:            "Petty Cash",
		ParentAccountID: &parentID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_FlipsCreditNormalAccounts() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).
		Return(&domain.Account{AccountID: accountID, AccountNumber: "4000", AccountType: "Revenue"}, nil).Once()
	suite.mockReportingRepo.On("SumAccountActivity", ctx, suite.userID, accountID, mock.Anything, mock.Anything).
		Return(d("100"), d("900"), nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, suite.userID, accountID, "2026-06-30")

	suite.Require().NoError(err)
	// Revenue is credit-normal: credit minus debit.
	suite.True(balance.Equal(d("800")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_BadDateRejected() {
	ctx := context.Background()
	_, err := suite.service.GetAccountBalance(ctx, suite.userID, uuid.NewString(), "30-06-2026")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_FiltersByTypeAndActive() {
	ctx := context.Background()
	active := true
	accType := "expense"
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID).Return([]domain.Account{
		{AccountID: "a1", AccountType: "Expense", IsActive: true},
		{AccountID: "a2", AccountType: "Expense", IsActive: false},
		{AccountID: "a3", AccountType: "Asset", IsActive: true},
	}, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.userID, dto.ListAccountsParams{
		AccountType: &accType,
		IsActive:    &active,
	})

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 1)
	suite.Equal("a1", accounts[0].AccountID)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReferencedAccountConflicts() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountRepo.On("DeleteAccount", ctx, suite.userID, accountID).
		Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
