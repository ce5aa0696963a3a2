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

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `
	receipt_id, user_id, receipt_number, payer, amount, currency_code,
	receipt_date, method, description,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.UserID,
		&m.ReceiptNumber,
		&m.Payer,
		&m.Amount,
		&m.CurrencyCode,
		&m.ReceiptDate,
		&m.Method,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveReceipt inserts a new receipt.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.UserID,
		m.ReceiptNumber,
		m.Payer,
		m.Amount,
		m.CurrencyCode,
		m.ReceiptDate,
		m.Method,
		m.Description,
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
		return apperrors.NewAppError(500, "failed to insert receipt "+m.ReceiptID, err)
	}
	return nil
}

// FindReceiptByID retrieves a receipt owned by the user.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, userID, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = $1 AND user_id = $2;`
	m, err := scanReceipt(r.Pool.QueryRow(ctx, query, receiptID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receipt by ID "+receiptID, err)
	}
	d := mapping.ToDomainReceipt(m)
	return &d, nil
}

// ListReceipts retrieves a paginated list of the user's receipts using
// token-based pagination on (receipt_date, created_at), newest first.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + receiptColumns + ` FROM receipts WHERE user_id = $1`
	orderByClause := `ORDER BY receipt_date DESC, created_at DESC`

	args := []interface{}{userID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (receipt_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query receipts for user "+userID, err)
	}
	defer rows.Close()

	receipts := make([]models.Receipt, 0, fetchLimit)
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		receipts = append(receipts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating receipt rows", err)
	}

	var nextTokenVal *string
	if len(receipts) > limit {
		last := receipts[limit-1]
		token := pagination.EncodeToken(last.ReceiptDate, last.CreatedAt)
		nextTokenVal = &token
		receipts = receipts[:limit]
	}

	return mapping.ToDomainReceiptSlice(receipts), nextTokenVal, nil
}

// UpdateReceipt updates an owned receipt, guarded by an update-conflict check
// on expectedUpdatedAt.
func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt, expectedUpdatedAt time.Time) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		UPDATE receipts
		SET receipt_number = $3, payer = $4, amount = $5, currency_code = $6,
		    receipt_date = $7, method = $8, description = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE receipt_id = $1 AND user_id = $2 AND last_updated_at = $12;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.UserID,
		m.ReceiptNumber,
		m.Payer,
		m.Amount,
		m.CurrencyCode,
		m.ReceiptDate,
		m.Method,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update receipt "+m.ReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or it changed under us; let the caller decide.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM receipts WHERE receipt_id = $1 AND user_id = $2);`, m.ReceiptID, m.UserID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to re-check receipt "+m.ReceiptID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(409, "receipt was modified concurrently", apperrors.ErrConflict)
	}
	return nil
}

// DeleteReceipt removes an owned receipt.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, userID, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1 AND user_id = $2;`, receiptID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete receipt "+receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
