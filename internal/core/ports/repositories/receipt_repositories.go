package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt owned by the user.
	FindReceiptByID(ctx context.Context, userID, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated list of the user's receipts using
	// token-based pagination on (receipt_date, created_at), newest first.
	ListReceipts(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Receipt, *string, error)
}

// ReceiptWriter defines write operations for receipt data.
type ReceiptWriter interface {
	// SaveReceipt inserts a new receipt. A duplicate receipt number for the
	// same owner yields ErrDuplicate.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// UpdateReceipt updates an owned receipt, guarded by an update-conflict
	// check on expectedUpdatedAt: when the row's last_updated_at no longer
	// matches, ErrConflict is returned and the caller re-verifies existence.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt, expectedUpdatedAt time.Time) error

	// DeleteReceipt removes an owned receipt.
	DeleteReceipt(ctx context.Context, userID, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
