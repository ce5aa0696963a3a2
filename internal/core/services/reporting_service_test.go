package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.ReportingSvcFacade
	userID            string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_RunningBalanceFoldsFromZero() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	lines := []domain.JournalLine{
		{LineID: "l1", VoucherID: "v1", AccountName: "Cash", IsDebit: true, Amount: d("100")},
		{LineID: "l2", VoucherID: "v1", AccountName: "Sales", IsDebit: false, Amount: d("40")},
		{LineID: "l3", VoucherID: "v2", AccountName: "Sales", IsDebit: false, Amount: d("60")},
	}
	suite.mockReportingRepo.On("GetJournalLines", ctx, suite.userID, from, to, (*string)(nil)).
		Return(lines, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.userID, from, to, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 3)
	suite.True(report.Entries[0].RunningBalance.Equal(d("100")))
	suite.True(report.Entries[1].RunningBalance.Equal(d("60")))
	suite.True(report.Entries[2].RunningBalance.Equal(d("0")))
	suite.True(report.TotalDebits.Equal(d("100")))
	suite.True(report.TotalCredits.Equal(d("100")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_SingleAccountFilterFoldsFromZero() {
	ctx := context.Background()
	accountID := "acc-cash"
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).
		Return(&domain.Account{AccountID: accountID, Name: "Cash", AccountType: "Asset"}, nil).Once()
	suite.mockReportingRepo.On("GetJournalLines", ctx, suite.userID, from, to, &accountID).
		Return([]domain.JournalLine{
			{LineID: "l1", AccountID: accountID, IsDebit: false, Amount: d("30")},
			{LineID: "l2", AccountID: accountID, IsDebit: true, Amount: d("100")},
		}, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.userID, from, to, &accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report.AccountID)
	suite.Equal(accountID, *report.AccountID)
	suite.Require().Len(report.Entries, 2)
	// The fold starts at zero even when filtered: no opening balance seed.
	suite.True(report.Entries[0].RunningBalance.Equal(d("-30")))
	suite.True(report.Entries[1].RunningBalance.Equal(d("70")))
	suite.True(report.TotalDebits.Equal(d("100")))
	suite.True(report.TotalCredits.Equal(d("30")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_UnknownFilterAccountRejected() {
	ctx := context.Background()
	accountID := "acc-ghost"
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.userID, from, to, &accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(report)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetJournalLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_InvertedRangeRejectedBeforeQuery() {
	ctx := context.Background()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.GeneralLedger(ctx, suite.userID, from, to, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetJournalLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SingleSidedColumnsAndEqualTotals() {
	ctx := context.Background()
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	activity := []domain.AccountActivity{
		{AccountID: "a1", AccountNumber: "1000", AccountName: "Cash", AccountType: "Current Asset", DebitTotal: d("1500"), CreditTotal: d("500")},
		{AccountID: "a2", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("1000")},
		{AccountID: "a3", AccountNumber: "2000", AccountName: "Loan", AccountType: "Liability", DebitTotal: d("200"), CreditTotal: d("200")},
	}
	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, (*time.Time)(nil), asOf).
		Return(activity, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.userID, asOf)

	suite.Require().NoError(err)
	// The zero-net loan account is dropped.
	suite.Require().Len(report.Rows, 2)

	cash := report.Rows[0]
	suite.Equal(domain.CategoryAsset, cash.Category)
	suite.True(cash.Debit.Equal(d("1000")))
	suite.True(cash.Credit.IsZero())

	sales := report.Rows[1]
	suite.True(sales.Debit.IsZero())
	suite.True(sales.Credit.Equal(d("1000")))

	suite.True(report.TotalDebit.Equal(report.TotalCredit))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestAccountLedger_RawOpeningSeedsRunningBalance() {
	ctx := context.Background()
	accountID := "acc-1"
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	account := &domain.Account{AccountID: accountID, AccountNumber: "4000", Name: "Sales", AccountType: "Revenue"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).Return(account, nil).Once()
	// Credit-heavy history: the raw opening balance is negative, no polarity flip.
	suite.mockReportingRepo.On("SumAccountActivityBefore", ctx, suite.userID, accountID, from).
		Return(d("100"), d("400"), nil).Once()
	suite.mockReportingRepo.On("GetJournalLines", ctx, suite.userID, from, to, &accountID).
		Return([]domain.JournalLine{
			{LineID: "l1", AccountID: accountID, IsDebit: false, Amount: d("50")},
			{LineID: "l2", AccountID: accountID, IsDebit: true, Amount: d("20")},
		}, nil).Once()

	report, err := suite.service.AccountLedger(ctx, suite.userID, accountID, from, to)

	suite.Require().NoError(err)
	suite.True(report.OpeningBalance.Equal(d("-300")))
	suite.Require().Len(report.Entries, 2)
	suite.True(report.Entries[0].RunningBalance.Equal(d("-350")))
	suite.True(report.Entries[1].RunningBalance.Equal(d("-330")))
	suite.True(report.ClosingBalance.Equal(d("-330")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_PositiveRowsOnly() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	activity := []domain.AccountActivity{
		{AccountID: "r1", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("1000")},
		{AccountID: "e1", AccountNumber: "5100", AccountName: "Rent", AccountType: "Expense", DebitTotal: d("400"), CreditTotal: d("0")},
		// Contra balance: natural amount is negative, excluded from the rows.
		{AccountID: "r2", AccountNumber: "4100", AccountName: "Refunds", AccountType: "Revenue", DebitTotal: d("50"), CreditTotal: d("0")},
		// Non-P&L account, ignored entirely.
		{AccountID: "a1", AccountNumber: "1000", AccountName: "Cash", AccountType: "Asset", DebitTotal: d("600"), CreditTotal: d("0")},
	}
	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, &from, to).
		Return(activity, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.Require().Len(report.Expenses, 1)
	suite.True(report.TotalRevenue.Equal(d("1000")))
	suite.True(report.TotalExpenses.Equal(d("400")))
	suite.True(report.NetIncome.Equal(d("600")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquationHoldsWithCurrentEarnings() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	activity := []domain.AccountActivity{
		{AccountID: "a1", AccountNumber: "1000", AccountName: "Cash", AccountType: "Asset", DebitTotal: d("1500"), CreditTotal: d("0")},
		{AccountID: "l1", AccountNumber: "2000", AccountName: "Loan", AccountType: "Liability", DebitTotal: d("0"), CreditTotal: d("500")},
		{AccountID: "q1", AccountNumber: "3000", AccountName: "Capital", AccountType: "Equity", DebitTotal: d("0"), CreditTotal: d("400")},
		{AccountID: "r1", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("1000")},
		{AccountID: "e1", AccountNumber: "5100", AccountName: "Rent", AccountType: "Expense", DebitTotal: d("400"), CreditTotal: d("0")},
	}
	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, (*time.Time)(nil), asOf).
		Return(activity, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.userID, asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(d("1500")))
	suite.True(report.TotalLiabilities.Equal(d("500")))
	// Declared equity 400 plus current earnings 600.
	suite.True(report.TotalEquity.Equal(d("1000")))
	suite.True(report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))

	suite.Require().Len(report.Equity, 2)
	suite.Equal("Current Earnings", report.Equity[1].Name)
	suite.True(report.Equity[1].Amount.Equal(d("600")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_Subtotals() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	activity := []domain.AccountActivity{
		{AccountID: "r1", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("2000")},
		{AccountID: "e1", AccountNumber: "5000", AccountName: "Cost of Goods Sold", AccountType: "Expense", DebitTotal: d("800"), CreditTotal: d("0")},
		{AccountID: "e2", AccountNumber: "5100", AccountName: "Rent", AccountType: "Expense", DebitTotal: d("300"), CreditTotal: d("0")},
		{AccountID: "e3", AccountNumber: "5900", AccountName: "Interest", AccountType: "Expense", DebitTotal: d("100"), CreditTotal: d("0")},
	}
	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, &from, to).
		Return(activity, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.userID, from, to, "")

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(d("2000")))
	suite.True(report.TotalCostOfSales.Equal(d("800")))
	suite.True(report.GrossProfit.Equal(d("1200")))
	suite.True(report.TotalOperatingExpenses.Equal(d("300")))
	suite.True(report.OperatingIncome.Equal(d("900")))
	// Interest participates in total expenses but in no subtotal.
	suite.Require().Len(report.OtherExpenses, 1)
	suite.True(report.TotalExpenses.Equal(d("1200")))
	suite.True(report.NetIncome.Equal(d("800")))
	suite.Nil(report.Comparison)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_PreviousYearComparison() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	prevFrom := from.AddDate(-1, 0, 0)
	prevTo := to.AddDate(-1, 0, 0)

	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, &from, to).
		Return([]domain.AccountActivity{
			{AccountID: "r1", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("2000")},
		}, nil).Once()
	suite.mockReportingRepo.On("GetAccountActivity", ctx, suite.userID, &prevFrom, prevTo).
		Return([]domain.AccountActivity{
			{AccountID: "r1", AccountNumber: "4000", AccountName: "Sales", AccountType: "Revenue", DebitTotal: d("0"), CreditTotal: d("1500")},
		}, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.userID, from, to, domain.ComparePreviousYear)

	suite.Require().NoError(err)
	suite.Require().NotNil(report.Comparison)
	suite.Equal(domain.ComparePreviousYear, report.Comparison.Kind)
	suite.Equal(prevFrom, report.Comparison.FromDate)
	suite.Equal(prevTo, report.Comparison.ToDate)
	suite.True(report.Comparison.TotalRevenue.Equal(d("1500")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_RangeOverTenYearsRejected() {
	ctx := context.Background()
	from := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.ProfitAndLoss(ctx, suite.userID, from, to, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetAccountActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
