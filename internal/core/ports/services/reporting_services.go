package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for generating financial reports.
// All date parameters are voucher-date bounds, inclusive on both ends.
type ReportingSvcFacade interface {
	// GeneralLedger lists every journal line in the period with a running
	// balance folded over debit minus credit from zero, optionally filtered
	// to a single account.
	GeneralLedger(ctx context.Context, userID string, from, to time.Time, accountID *string) (*domain.GeneralLedgerReport, error)

	// TrialBalance aggregates per-account net balances as of a date, each
	// account appearing in a single column.
	TrialBalance(ctx context.Context, userID string, asOf time.Time) (*domain.TrialBalanceReport, error)

	// AccountLedger lists one account's lines in the period with opening and
	// closing balances carried as raw debit-minus-credit figures.
	AccountLedger(ctx context.Context, userID string, accountID string, from, to time.Time) (*domain.AccountLedgerReport, error)

	// IncomeStatement summarises revenue and expense account balances for the
	// period.
	IncomeStatement(ctx context.Context, userID string, from, to time.Time) (*domain.IncomeStatementReport, error)

	// BalanceSheet reports cumulative asset, liability and equity balances as
	// of a date, with retained earnings folded into equity.
	BalanceSheet(ctx context.Context, userID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// ProfitAndLoss breaks expenses into cost of sales and operating expenses
	// and optionally compares against the previous period or previous year.
	ProfitAndLoss(ctx context.Context, userID string, from, to time.Time, compare domain.PLComparisonKind) (*domain.ProfitAndLossReport, error)
}
