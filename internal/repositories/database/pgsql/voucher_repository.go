package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_app/internal/models"
	"github.com/finbooks/finbooks_app/internal/utils/mapping"
	"github.com/finbooks/finbooks_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and line data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryFacade
var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `
	voucher_id, user_id, voucher_number, voucher_date, transaction_type,
	description, total_amount, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.UserID,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.TransactionType,
		&m.Description,
		&m.TotalAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func queueVoucherLines(batch *pgx.Batch, voucherID string, lines []domain.VoucherLine) {
	lineQuery := `
		INSERT INTO voucher_lines (line_id, voucher_id, account_id, is_debit, amount, description, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		m := mapping.ToModelVoucherLine(line)
		batch.Queue(lineQuery,
			m.LineID,
			voucherID,
			m.AccountID,
			m.IsDebit,
			m.Amount,
			m.Description,
			m.LineNo,
		)
	}
}

// SaveVoucher persists a voucher header and its lines in one transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		m.VoucherID,
		m.UserID,
		m.VoucherNumber,
		m.VoucherDate,
		m.TransactionType,
		m.Description,
		m.TotalAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	queueVoucherLines(batch, m.VoucherID, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for voucher "+m.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher owned by the user, without lines.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, userID, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1 AND user_id = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	d := mapping.ToDomainVoucher(m)
	return &d, nil
}

// FindVoucherLines retrieves the ordered lines of a voucher.
func (r *PgxVoucherRepository) FindVoucherLines(ctx context.Context, voucherID string) ([]domain.VoucherLine, error) {
	query := `
		SELECT line_id, voucher_id, account_id, is_debit, amount, description, line_no
		FROM voucher_lines
		WHERE voucher_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for voucher "+voucherID, err)
	}
	defer rows.Close()

	lines := []models.VoucherLine{}
	for rows.Next() {
		var m models.VoucherLine
		if err := rows.Scan(&m.LineID, &m.VoucherID, &m.AccountID, &m.IsDebit, &m.Amount, &m.Description, &m.LineNo); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for voucher "+voucherID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for voucher "+voucherID, err)
	}
	return mapping.ToDomainVoucherLineSlice(lines), nil
}

// ListVouchers retrieves a paginated list of the user's vouchers using
// token-based pagination on (voucher_date, created_at), newest first.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + voucherColumns + ` FROM vouchers WHERE user_id = $1`
	orderByClause := `ORDER BY voucher_date DESC, created_at DESC`

	args := []interface{}{userID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (voucher_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for user "+userID, err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		last := vouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		vouchers = vouchers[:limit]
	}

	result := make([]domain.Voucher, len(vouchers))
	for i, m := range vouchers {
		result[i] = mapping.ToDomainVoucher(m)
	}
	return result, nextTokenVal, nil
}

// UpdateVoucher replaces a voucher's header fields and full line set in one
// transaction.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		UPDATE vouchers
		SET voucher_number = $3, voucher_date = $4, transaction_type = $5,
		    description = $6, total_amount = $7, status = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE voucher_id = $1 AND user_id = $2;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		m.VoucherID,
		m.UserID,
		m.VoucherNumber,
		m.VoucherDate,
		m.TransactionType,
		m.Description,
		m.TotalAmount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update voucher "+m.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_id = $1;`, m.VoucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete old lines for voucher "+m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	queueVoucherLines(batch, m.VoucherID, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for voucher "+m.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateVoucherStatus sets the status of an owned voucher.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, userID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE voucher_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, userID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVoucher removes an owned voucher and its lines. It yields ErrConflict
// while any payment line references the voucher.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, userID, voucherID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var referenced bool
	refQuery := `SELECT EXISTS (SELECT 1 FROM payment_lines WHERE voucher_id = $1);`
	if err := tx.QueryRow(ctx, refQuery, voucherID).Scan(&referenced); err != nil {
		return apperrors.NewAppError(500, "failed to check payment references for voucher "+voucherID, err)
	}
	if referenced {
		return apperrors.NewAppError(409, "voucher has payment allocations", apperrors.ErrConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for voucher "+voucherID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1 AND user_id = $2;`, voucherID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
