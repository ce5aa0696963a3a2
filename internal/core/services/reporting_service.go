package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// maxReportYears caps the span of period reports.
const maxReportYears = 10

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// validatePeriod rejects inverted and oversized report windows before any query.
func validatePeriod(from, to time.Time) error {
	if from.After(to) {
		return apperrors.NewAppError(400, "fromDate must not be after toDate", apperrors.ErrValidation)
	}
	if from.AddDate(maxReportYears, 0, 0).Before(to) {
		return apperrors.NewAppError(400, "report range cannot exceed 10 years", apperrors.ErrValidation)
	}
	return nil
}

// GeneralLedger lists every journal line in the period with a running balance
// folded over debit minus credit from zero. No opening balance seeds the fold,
// even when filtered to a single account: this is a raw transaction listing,
// not an account ledger.
func (s *reportingService) GeneralLedger(ctx context.Context, userID string, from, to time.Time, accountID *string) (*domain.GeneralLedgerReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	if accountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *accountID); err != nil {
			return nil, err
		}
	}

	lines, err := s.reportingRepo.GetJournalLines(ctx, userID, from, to, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve general ledger lines")
		return nil, err
	}

	report := &domain.GeneralLedgerReport{
		FromDate:     from,
		ToDate:       to,
		AccountID:    accountID,
		Entries:      make([]domain.GeneralLedgerEntry, len(lines)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	running := decimal.Zero
	for i, line := range lines {
		entry := domain.GeneralLedgerEntry{JournalLine: line}
		if line.IsDebit {
			entry.Debit = line.Amount
			entry.Credit = decimal.Zero
			report.TotalDebits = report.TotalDebits.Add(line.Amount)
		} else {
			entry.Debit = decimal.Zero
			entry.Credit = line.Amount
			report.TotalCredits = report.TotalCredits.Add(line.Amount)
		}
		running = running.Add(accounting.SignedLineAmount(line.IsDebit, line.Amount))
		entry.RunningBalance = running
		report.Entries[i] = entry
	}

	s.LogInfo(ctx, "General ledger generated", slog.Int("entries", len(report.Entries)))
	return report, nil
}

// TrialBalance aggregates per-account net balances as of a date. Each account
// lands in exactly one column: whichever side its net balance favors.
func (s *reportingService) TrialBalance(ctx context.Context, userID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, userID, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance activity")
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, a := range activity {
		net := accounting.RawBalance(a.DebitTotal, a.CreditTotal)
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:     a.AccountID,
			AccountNumber: a.AccountNumber,
			AccountName:   a.AccountName,
			Category:      accounting.Classify(a.AccountType, a.AccountNumber),
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}
		if net.IsPositive() {
			row.Debit = net
			report.TotalDebit = report.TotalDebit.Add(net)
		} else {
			row.Credit = net.Neg()
			report.TotalCredit = report.TotalCredit.Add(net.Neg())
		}
		report.Rows = append(report.Rows, row)
	}

	s.LogInfo(ctx, "Trial balance generated", slog.Int("rows", len(report.Rows)))
	return report, nil
}

// AccountLedger lists one account's lines in the period. Opening and closing
// balances are raw debit-minus-credit figures; no polarity flip applies here,
// whatever the account's type.
func (s *reportingService) AccountLedger(ctx context.Context, userID string, accountID string, from, to time.Time) (*domain.AccountLedgerReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	priorDebit, priorCredit, err := s.reportingRepo.SumAccountActivityBefore(ctx, userID, accountID, from)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve opening balance", slog.String("account_id", accountID))
		return nil, err
	}
	opening := accounting.RawBalance(priorDebit, priorCredit)

	lines, err := s.reportingRepo.GetJournalLines(ctx, userID, from, to, &accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account ledger lines", slog.String("account_id", accountID))
		return nil, err
	}

	report := &domain.AccountLedgerReport{
		AccountID:      accountID,
		AccountNumber:  account.AccountNumber,
		AccountName:    account.Name,
		FromDate:       from,
		ToDate:         to,
		OpeningBalance: opening,
		Entries:        make([]domain.AccountLedgerEntry, len(lines)),
	}

	running := opening
	for i, line := range lines {
		entry := domain.AccountLedgerEntry{JournalLine: line}
		if line.IsDebit {
			entry.Debit = line.Amount
			entry.Credit = decimal.Zero
		} else {
			entry.Debit = decimal.Zero
			entry.Credit = line.Amount
		}
		running = running.Add(accounting.SignedLineAmount(line.IsDebit, line.Amount))
		entry.RunningBalance = running
		report.Entries[i] = entry
	}
	report.ClosingBalance = running

	s.LogInfo(ctx, "Account ledger generated", slog.String("account_id", accountID), slog.Int("entries", len(report.Entries)))
	return report, nil
}

// periodStatement aggregates the period's revenue and expense accounts into
// natural-balance rows. Only strictly positive amounts become rows; contra
// balances drop out of the statement entirely.
func (s *reportingService) periodStatement(ctx context.Context, userID string, from, to time.Time) (revenue, expenses []domain.AccountAmount, err error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, userID, &from, to)
	if err != nil {
		return nil, nil, err
	}

	revenue = []domain.AccountAmount{}
	expenses = []domain.AccountAmount{}
	for _, a := range activity {
		category := accounting.Classify(a.AccountType, a.AccountNumber)
		if category != domain.CategoryRevenue && category != domain.CategoryExpense {
			continue
		}
		amount := accounting.NaturalBalance(category, a.DebitTotal, a.CreditTotal)
		if !amount.IsPositive() {
			continue
		}
		row := domain.AccountAmount{
			AccountID:     a.AccountID,
			AccountNumber: a.AccountNumber,
			Name:          a.AccountName,
			Amount:        amount,
		}
		if category == domain.CategoryRevenue {
			revenue = append(revenue, row)
		} else {
			expenses = append(expenses, row)
		}
	}
	return revenue, expenses, nil
}

// IncomeStatement summarises revenue and expense account balances for the period.
func (s *reportingService) IncomeStatement(ctx context.Context, userID string, from, to time.Time) (*domain.IncomeStatementReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	revenue, expenses, err := s.periodStatement(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement activity")
		return nil, err
	}

	report := &domain.IncomeStatementReport{
		FromDate:      from,
		ToDate:        to,
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range revenue {
		report.TotalRevenue = report.TotalRevenue.Add(r.Amount)
	}
	for _, e := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Income statement generated",
		slog.Int("revenue_accounts", len(revenue)),
		slog.Int("expense_accounts", len(expenses)))
	return report, nil
}

// BalanceSheet reports cumulative asset, liability and equity balances as of a
// date. Liability and equity amounts are negated so normal credit balances
// display as positive magnitudes, and the period's net earnings are folded
// into equity so totalAssets == totalLiabilities + totalEquity holds for a
// balanced ledger.
func (s *reportingService) BalanceSheet(ctx context.Context, userID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, userID, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet activity")
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	earnings := decimal.Zero
	for _, a := range activity {
		raw := accounting.RawBalance(a.DebitTotal, a.CreditTotal)
		category := accounting.Classify(a.AccountType, a.AccountNumber)
		switch category {
		case domain.CategoryRevenue, domain.CategoryExpense:
			earnings = earnings.Sub(raw)
			continue
		case domain.CategoryUnknown:
			continue
		}
		if raw.IsZero() {
			continue
		}
		row := domain.AccountAmount{
			AccountID:     a.AccountID,
			AccountNumber: a.AccountNumber,
			Name:          a.AccountName,
			Amount:        raw,
		}
		switch category {
		case domain.CategoryAsset:
			report.Assets = append(report.Assets, row)
			report.TotalAssets = report.TotalAssets.Add(raw)
		case domain.CategoryLiability:
			row.Amount = raw.Neg()
			report.Liabilities = append(report.Liabilities, row)
			report.TotalLiabilities = report.TotalLiabilities.Add(row.Amount)
		case domain.CategoryEquity:
			row.Amount = raw.Neg()
			report.Equity = append(report.Equity, row)
			report.TotalEquity = report.TotalEquity.Add(row.Amount)
		}
	}

	if !earnings.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{
			Name:   "Current Earnings",
			Amount: earnings,
		})
		report.TotalEquity = report.TotalEquity.Add(earnings)
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}

// comparisonWindow derives the comparison period for a P&L report. An
// unsupported kind yields ok=false and no comparison block.
func comparisonWindow(kind domain.PLComparisonKind, from, to time.Time) (time.Time, time.Time, bool) {
	switch kind {
	case domain.ComparePreviousPeriod:
		span := to.Sub(from)
		prevTo := from.Add(-24 * time.Hour)
		prevFrom := prevTo.Add(-span)
		return prevFrom, prevTo, true
	case domain.ComparePreviousYear:
		return from.AddDate(-1, 0, 0), to.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// plFigures holds the headline numbers shared by the main and comparison windows.
type plFigures struct {
	revenue           []domain.AccountAmount
	costOfSales       []domain.AccountAmount
	operatingExpenses []domain.AccountAmount
	otherExpenses     []domain.AccountAmount
	totalRevenue      decimal.Decimal
	totalCostOfSales  decimal.Decimal
	grossProfit       decimal.Decimal
	totalOperating    decimal.Decimal
	operatingIncome   decimal.Decimal
	totalExpenses     decimal.Decimal
	netIncome         decimal.Decimal
}

func (s *reportingService) profitAndLossFigures(ctx context.Context, userID string, from, to time.Time) (*plFigures, error) {
	revenue, expenses, err := s.periodStatement(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	f := &plFigures{
		revenue:           revenue,
		costOfSales:       []domain.AccountAmount{},
		operatingExpenses: []domain.AccountAmount{},
		otherExpenses:     []domain.AccountAmount{},
		totalRevenue:      decimal.Zero,
		totalCostOfSales:  decimal.Zero,
		totalOperating:    decimal.Zero,
		totalExpenses:     decimal.Zero,
	}
	for _, r := range revenue {
		f.totalRevenue = f.totalRevenue.Add(r.Amount)
	}
	for _, e := range expenses {
		f.totalExpenses = f.totalExpenses.Add(e.Amount)
		switch {
		case accounting.IsCostOfSales(e.Name, e.AccountNumber):
			f.costOfSales = append(f.costOfSales, e)
			f.totalCostOfSales = f.totalCostOfSales.Add(e.Amount)
		case accounting.IsOperatingExpense(e.Name, e.AccountNumber):
			f.operatingExpenses = append(f.operatingExpenses, e)
			f.totalOperating = f.totalOperating.Add(e.Amount)
		default:
			// Uncategorized: counted in total expenses, in no subtotal.
			f.otherExpenses = append(f.otherExpenses, e)
		}
	}
	f.grossProfit = f.totalRevenue.Sub(f.totalCostOfSales)
	f.operatingIncome = f.grossProfit.Sub(f.totalOperating)
	f.netIncome = f.totalRevenue.Sub(f.totalExpenses)
	return f, nil
}

// ProfitAndLoss breaks expenses into cost of sales and operating expenses and
// optionally compares against the previous period or previous year.
func (s *reportingService) ProfitAndLoss(ctx context.Context, userID string, from, to time.Time, compare domain.PLComparisonKind) (*domain.ProfitAndLossReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	figures, err := s.profitAndLossFigures(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss activity")
		return nil, err
	}

	report := &domain.ProfitAndLossReport{
		FromDate:               from,
		ToDate:                 to,
		Revenue:                figures.revenue,
		CostOfSales:            figures.costOfSales,
		OperatingExpenses:      figures.operatingExpenses,
		OtherExpenses:          figures.otherExpenses,
		TotalRevenue:           figures.totalRevenue,
		TotalCostOfSales:       figures.totalCostOfSales,
		GrossProfit:            figures.grossProfit,
		TotalOperatingExpenses: figures.totalOperating,
		OperatingIncome:        figures.operatingIncome,
		TotalExpenses:          figures.totalExpenses,
		NetIncome:              figures.netIncome,
	}

	if compare != "" {
		prevFrom, prevTo, ok := comparisonWindow(compare, from, to)
		if !ok {
			// Unsupported kinds yield the report without a comparison block.
			s.LogInfo(ctx, "Unsupported P&L comparison kind ignored", slog.String("kind", string(compare)))
			return report, nil
		}
		prev, err := s.profitAndLossFigures(ctx, userID, prevFrom, prevTo)
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve P&L comparison activity")
			return nil, err
		}
		report.Comparison = &domain.PLComparison{
			Kind:              compare,
			FromDate:          prevFrom,
			ToDate:            prevTo,
			TotalRevenue:      prev.totalRevenue,
			CostOfSales:       prev.totalCostOfSales,
			GrossProfit:       prev.grossProfit,
			OperatingExpenses: prev.totalOperating,
			OperatingIncome:   prev.operatingIncome,
			TotalExpenses:     prev.totalExpenses,
			NetIncome:         prev.netIncome,
		}
	}

	s.LogInfo(ctx, "Profit and loss generated",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.CostOfSales)+len(report.OperatingExpenses)+len(report.OtherExpenses)))
	return report, nil
}
