package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the owner-scoped aggregate reads every report is
// built from. Lines on VOID vouchers are excluded from all of them.
type ReportingRepository interface {
	// GetAccountActivity aggregates debit and credit totals per account over
	// voucher dates in [fromDate, toDate] (fromDate nil means unbounded below).
	// Accounts without any line in the window are not returned.
	GetAccountActivity(ctx context.Context, userID string, fromDate *time.Time, toDate time.Time) ([]domain.AccountActivity, error)

	// GetJournalLines retrieves voucher lines joined to voucher and account
	// metadata for voucher dates in [fromDate, toDate], ordered by
	// (voucher_date, voucher_id, line_no) ascending, optionally filtered to one
	// account.
	GetJournalLines(ctx context.Context, userID string, fromDate, toDate time.Time, accountID *string) ([]domain.JournalLine, error)

	// SumAccountActivity sums one account's debit and credit totals over
	// voucher dates in (afterDate, untilDate] (afterDate nil means unbounded
	// below).
	SumAccountActivity(ctx context.Context, userID, accountID string, afterDate *time.Time, untilDate time.Time) (debitTotal, creditTotal decimal.Decimal, err error)

	// SumAccountActivityBefore sums one account's debit and credit totals over
	// voucher dates strictly before the given date, for opening balances.
	SumAccountActivityBefore(ctx context.Context, userID, accountID string, beforeDate time.Time) (debitTotal, creditTotal decimal.Decimal, err error)
}
