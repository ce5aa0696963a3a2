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
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `
	payment_id, user_id, payment_number, payment_date, payee, method,
	account_id, total_amount, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.UserID,
		&m.PaymentNumber,
		&m.PaymentDate,
		&m.Payee,
		&m.Method,
		&m.AccountID,
		&m.TotalAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// lockedVoucher is the subset of voucher columns read under FOR UPDATE.
type lockedVoucher struct {
	voucherID   string
	totalAmount decimal.Decimal
	status      string
}

// lockVouchers acquires row locks on the given owned vouchers so concurrent
// allocations against the same voucher serialize. Missing IDs yield ErrNotFound.
func (r *PgxPaymentRepository) lockVouchers(ctx context.Context, tx pgx.Tx, userID string, voucherIDs []string) (map[string]lockedVoucher, error) {
	if len(voucherIDs) == 0 {
		return map[string]lockedVoucher{}, nil
	}
	query := `
		SELECT voucher_id, total_amount, status
		FROM vouchers
		WHERE user_id = $1 AND voucher_id = ANY($2)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, userID, voucherIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock vouchers for payment", err)
	}
	defer rows.Close()

	locked := make(map[string]lockedVoucher, len(voucherIDs))
	for rows.Next() {
		var lv lockedVoucher
		if err := rows.Scan(&lv.voucherID, &lv.totalAmount, &lv.status); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked voucher row", err)
		}
		locked[lv.voucherID] = lv
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked voucher rows", err)
	}
	for _, id := range voucherIDs {
		if _, ok := locked[id]; !ok {
			return nil, apperrors.NewNotFoundError("voucher " + id + " not found")
		}
	}
	return locked, nil
}

// paidTotalExcluding sums paid allocations for a voucher, optionally leaving
// out one payment's own lines (for re-checks during that payment's update).
func paidTotalExcluding(ctx context.Context, tx pgx.Tx, voucherID, excludePaymentID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(pl.amount_paid), 0)
		FROM payment_lines pl
		JOIN payments p ON pl.payment_id = p.payment_id
		WHERE pl.voucher_id = $1 AND p.status = 'PAID' AND p.payment_id <> $2;
	`
	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, voucherID, excludePaymentID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum paid allocations for voucher "+voucherID, err)
	}
	return total, nil
}

// recomputeVoucherStatusInTx rederives one voucher's status from its paid
// allocations inside the given transaction. Void vouchers are left untouched.
func recomputeVoucherStatusInTx(ctx context.Context, tx pgx.Tx, lv lockedVoucher, updatedBy string, updatedAt time.Time) (domain.VoucherStatus, error) {
	if domain.VoucherStatus(lv.status) == domain.VoucherVoid {
		return domain.VoucherVoid, nil
	}
	paidTotal, err := paidTotalExcluding(ctx, tx, lv.voucherID, "")
	if err != nil {
		return "", err
	}
	newStatus := domain.StatusForPayment(lv.totalAmount, paidTotal)
	if string(newStatus) == lv.status {
		return newStatus, nil
	}
	query := `
		UPDATE vouchers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;
	`
	if _, err := tx.Exec(ctx, query, lv.voucherID, string(newStatus), updatedAt, updatedBy); err != nil {
		return "", apperrors.NewAppError(500, "failed to update status of voucher "+lv.voucherID, err)
	}
	return newStatus, nil
}

func (r *PgxPaymentRepository) insertPaymentHeader(ctx context.Context, tx pgx.Tx, m models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.UserID,
		m.PaymentNumber,
		m.PaymentDate,
		m.Payee,
		m.Method,
		m.AccountID,
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
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

func insertPaymentDetails(ctx context.Context, tx pgx.Tx, paymentID string, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO payment_lines (line_id, payment_id, voucher_id, amount_paid)
		VALUES ($1, $2, $3, $4);
	`
	for _, line := range lines {
		batch.Queue(lineQuery, line.LineID, paymentID, line.VoucherID, line.AmountPaid)
	}
	attachmentQuery := `
		INSERT INTO payment_attachments (attachment_id, payment_id, file_name, content_type, url)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, a := range attachments {
		batch.Queue(attachmentQuery, a.AttachmentID, paymentID, a.FileName, a.ContentType, a.URL)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert details for payment "+paymentID, err)
	}
	return nil
}

func voucherIDsOf(lines []domain.PaymentLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if !seen[line.VoucherID] {
			seen[line.VoucherID] = true
			ids = append(ids, line.VoucherID)
		}
	}
	return ids
}

// SavePayment persists a payment with its lines and attachments, re-checks
// each referenced voucher under a row lock, and recomputes voucher statuses.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := r.lockVouchers(ctx, tx, payment.UserID, voucherIDsOf(lines))
	if err != nil {
		return err
	}

	// Re-check under the lock: a voucher fully covered by paid payments has
	// nothing left to allocate, and drafts get the same gate so they cannot
	// slip past it by flipping to PAID later.
	for _, lv := range locked {
		if domain.VoucherStatus(lv.status) == domain.VoucherVoid {
			return apperrors.NewAppError(409, "voucher "+lv.voucherID+" is void", apperrors.ErrConflict)
		}
		paidTotal, err := paidTotalExcluding(ctx, tx, lv.voucherID, payment.PaymentID)
		if err != nil {
			return err
		}
		if domain.StatusForPayment(lv.totalAmount, paidTotal) == domain.VoucherPaid {
			return apperrors.NewAppError(409, "voucher "+lv.voucherID+" is already fully paid", apperrors.ErrConflict)
		}
	}

	if err := r.insertPaymentHeader(ctx, tx, mapping.ToModelPayment(payment)); err != nil {
		return err
	}
	if err := insertPaymentDetails(ctx, tx, payment.PaymentID, lines, attachments); err != nil {
		return err
	}

	for _, lv := range locked {
		if _, err := recomputeVoucherStatusInTx(ctx, tx, lv, payment.LastUpdatedBy, payment.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdatePayment replaces a payment's header, lines and attachments in one
// transaction, recomputing the status of vouchers referenced before and after.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Vouchers touched before the change still need a status recompute after
	// their allocations disappear.
	oldVoucherIDs, err := voucherIDsForPayment(ctx, tx, payment.PaymentID)
	if err != nil {
		return err
	}
	affected := voucherIDsOf(lines)
	for _, id := range oldVoucherIDs {
		found := false
		for _, n := range affected {
			if n == id {
				found = true
				break
			}
		}
		if !found {
			affected = append(affected, id)
		}
	}

	locked, err := r.lockVouchers(ctx, tx, payment.UserID, affected)
	if err != nil {
		return err
	}

	m := mapping.ToModelPayment(payment)
	headerQuery := `
		UPDATE payments
		SET payment_number = $3, payment_date = $4, payee = $5, method = $6,
		    account_id = $7, total_amount = $8, status = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1 AND user_id = $2;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		m.PaymentID,
		m.UserID,
		m.PaymentNumber,
		m.PaymentDate,
		m.Payee,
		m.Method,
		m.AccountID,
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
		return apperrors.NewAppError(500, "failed to update payment "+m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payment_lines WHERE payment_id = $1;`, m.PaymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete old lines for payment "+m.PaymentID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payment_attachments WHERE payment_id = $1;`, m.PaymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete old attachments for payment "+m.PaymentID, err)
	}

	// Re-check under the lock with this payment's old allocations gone. Drafts
	// get the same gate as paid payments.
	for _, line := range lines {
		lv := locked[line.VoucherID]
		if domain.VoucherStatus(lv.status) == domain.VoucherVoid {
			return apperrors.NewAppError(409, "voucher "+lv.voucherID+" is void", apperrors.ErrConflict)
		}
		paidTotal, err := paidTotalExcluding(ctx, tx, lv.voucherID, payment.PaymentID)
		if err != nil {
			return err
		}
		if domain.StatusForPayment(lv.totalAmount, paidTotal) == domain.VoucherPaid {
			return apperrors.NewAppError(409, "voucher "+lv.voucherID+" is already fully paid", apperrors.ErrConflict)
		}
	}

	if err := insertPaymentDetails(ctx, tx, payment.PaymentID, lines, attachments); err != nil {
		return err
	}

	for _, lv := range locked {
		if _, err := recomputeVoucherStatusInTx(ctx, tx, lv, payment.LastUpdatedBy, payment.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func voucherIDsForPayment(ctx context.Context, tx pgx.Tx, paymentID string) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT DISTINCT voucher_id FROM payment_lines WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query voucher IDs for payment "+paymentID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher ID row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher ID rows", err)
	}
	return ids, nil
}

// DeletePayment removes an owned payment with its lines and attachments and
// recomputes the status of the vouchers it referenced.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, userID, paymentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	voucherIDs, err := voucherIDsForPayment(ctx, tx, paymentID)
	if err != nil {
		return err
	}
	locked, err := r.lockVouchers(ctx, tx, userID, voucherIDs)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payment_lines WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for payment "+paymentID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payment_attachments WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete attachments for payment "+paymentID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1 AND user_id = $2;`, paymentID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	now := time.Now().UTC()
	for _, lv := range locked {
		if _, err := recomputeVoucherStatusInTx(ctx, tx, lv, userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// RecomputeVoucherStatus rederives one owned voucher's payment status from its
// paid allocations and persists it when changed.
func (r *PgxPaymentRepository) RecomputeVoucherStatus(ctx context.Context, userID, voucherID string) (domain.VoucherStatus, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	locked, err := r.lockVouchers(ctx, tx, userID, []string{voucherID})
	if err != nil {
		return "", err
	}

	status, err := recomputeVoucherStatusInTx(ctx, tx, locked[voucherID], userID, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return status, nil
}

// FindPaymentByID retrieves a payment owned by the user, without lines.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 AND user_id = $2;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindPaymentLines retrieves the lines of a payment.
func (r *PgxPaymentRepository) FindPaymentLines(ctx context.Context, paymentID string) ([]domain.PaymentLine, error) {
	query := `
		SELECT line_id, payment_id, voucher_id, amount_paid
		FROM payment_lines
		WHERE payment_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for payment "+paymentID, err)
	}
	defer rows.Close()

	lines := []models.PaymentLine{}
	for rows.Next() {
		var m models.PaymentLine
		if err := rows.Scan(&m.LineID, &m.PaymentID, &m.VoucherID, &m.AmountPaid); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for payment "+paymentID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for payment "+paymentID, err)
	}
	return mapping.ToDomainPaymentLineSlice(lines), nil
}

// FindPaymentAttachments retrieves the attachment metadata of a payment.
func (r *PgxPaymentRepository) FindPaymentAttachments(ctx context.Context, paymentID string) ([]domain.PaymentAttachment, error) {
	query := `
		SELECT attachment_id, payment_id, file_name, content_type, url
		FROM payment_attachments
		WHERE payment_id = $1
		ORDER BY attachment_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments for payment "+paymentID, err)
	}
	defer rows.Close()

	attachments := []models.PaymentAttachment{}
	for rows.Next() {
		var m models.PaymentAttachment
		if err := rows.Scan(&m.AttachmentID, &m.PaymentID, &m.FileName, &m.ContentType, &m.URL); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row for payment "+paymentID, err)
		}
		attachments = append(attachments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows for payment "+paymentID, err)
	}
	return mapping.ToDomainPaymentAttachmentSlice(attachments), nil
}

// ListPayments retrieves a paginated list of the user's payments using
// token-based pagination on (payment_date, created_at), newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1`
	orderByClause := `ORDER BY payment_date DESC, created_at DESC`

	args := []interface{}{userID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (payment_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for user "+userID, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	var nextTokenVal *string
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		nextTokenVal = &token
		payments = payments[:limit]
	}

	result := make([]domain.Payment, len(payments))
	for i, m := range payments {
		result[i] = mapping.ToDomainPayment(m)
	}
	return result, nextTokenVal, nil
}

// PaidTotalForVoucher sums amount_paid over payment lines whose payment has
// status PAID, for one voucher.
func (r *PgxPaymentRepository) PaidTotalForVoucher(ctx context.Context, voucherID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(pl.amount_paid), 0)
		FROM payment_lines pl
		JOIN payments p ON pl.payment_id = p.payment_id
		WHERE pl.voucher_id = $1 AND p.status = 'PAID';
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, voucherID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum paid allocations for voucher "+voucherID, err)
	}
	return total, nil
}
