package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAccountActivity aggregates debit and credit totals per account over
// voucher dates in [fromDate, toDate]. Lines on VOID vouchers are excluded.
func (r *reportingRepository) GetAccountActivity(ctx context.Context, userID string, fromDate *time.Time, toDate time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT
			a.account_id,
			a.account_number,
			a.name AS account_name,
			a.account_type,
			SUM(CASE WHEN l.is_debit THEN l.amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN l.is_debit THEN 0 ELSE l.amount END) AS total_credit
		FROM voucher_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN vouchers v ON l.voucher_id = v.voucher_id
		WHERE v.user_id = $1
			AND v.status <> 'VOID'
			AND v.voucher_date <= $2
			AND ($3::timestamptz IS NULL OR v.voucher_date >= $3)
		GROUP BY a.account_id, a.account_number, a.name, a.account_type
		ORDER BY a.account_number;
	`

	rows, err := r.Pool.Query(ctx, query, userID, toDate, fromDate)
	if err != nil {
		return nil, fmt.Errorf("error querying account activity: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountActivity{}
	for rows.Next() {
		var row domain.AccountActivity
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountNumber,
			&row.AccountName,
			&row.AccountType,
			&row.DebitTotal,
			&row.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning account activity row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}

	return result, nil
}

// GetJournalLines retrieves voucher lines joined to voucher and account
// metadata, ordered by (voucher_date, voucher_id, line_no) ascending.
func (r *reportingRepository) GetJournalLines(ctx context.Context, userID string, fromDate, toDate time.Time, accountID *string) ([]domain.JournalLine, error) {
	query := `
		SELECT
			l.line_id,
			l.voucher_id,
			v.voucher_number,
			v.voucher_date,
			COALESCE(NULLIF(l.description, ''), v.description) AS description,
			l.account_id,
			a.account_number,
			a.name AS account_name,
			l.is_debit,
			l.amount,
			l.line_no
		FROM voucher_lines l
		JOIN vouchers v ON l.voucher_id = v.voucher_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE v.user_id = $1
			AND v.status <> 'VOID'
			AND v.voucher_date BETWEEN $2 AND $3
			AND ($4::text IS NULL OR l.account_id = $4)
		ORDER BY v.voucher_date, v.voucher_id, l.line_no;
	`

	rows, err := r.Pool.Query(ctx, query, userID, fromDate, toDate, accountID)
	if err != nil {
		return nil, fmt.Errorf("error querying journal lines: %w", err)
	}
	defer rows.Close()

	result := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.VoucherID,
			&line.VoucherNumber,
			&line.VoucherDate,
			&line.Description,
			&line.AccountID,
			&line.AccountNumber,
			&line.AccountName,
			&line.IsDebit,
			&line.Amount,
			&line.LineNo,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal line row: %w", err)
		}
		result = append(result, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	return result, nil
}

// SumAccountActivity sums one account's debit and credit totals over voucher
// dates in (afterDate, untilDate].
func (r *reportingRepository) SumAccountActivity(ctx context.Context, userID, accountID string, afterDate *time.Time, untilDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN l.is_debit THEN l.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN l.is_debit THEN 0 ELSE l.amount END), 0)
		FROM voucher_lines l
		JOIN vouchers v ON l.voucher_id = v.voucher_id
		WHERE v.user_id = $1
			AND l.account_id = $2
			AND v.status <> 'VOID'
			AND v.voucher_date <= $3
			AND ($4::timestamptz IS NULL OR v.voucher_date > $4);
	`

	var debitTotal, creditTotal decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, accountID, untilDate, afterDate).Scan(&debitTotal, &creditTotal); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error summing account activity for %s: %w", accountID, err)
	}
	return debitTotal, creditTotal, nil
}

// SumAccountActivityBefore sums one account's debit and credit totals over
// voucher dates strictly before the given date.
func (r *reportingRepository) SumAccountActivityBefore(ctx context.Context, userID, accountID string, beforeDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN l.is_debit THEN l.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN l.is_debit THEN 0 ELSE l.amount END), 0)
		FROM voucher_lines l
		JOIN vouchers v ON l.voucher_id = v.voucher_id
		WHERE v.user_id = $1
			AND l.account_id = $2
			AND v.status <> 'VOID'
			AND v.voucher_date < $3;
	`

	var debitTotal, creditTotal decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, accountID, beforeDate).Scan(&debitTotal, &creditTotal); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error summing prior account activity for %s: %w", accountID, err)
	}
	return debitTotal, creditTotal, nil
}
