package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

// VoucherReader defines read operations for voucher data.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher owned by the user, without lines.
	FindVoucherByID(ctx context.Context, userID, voucherID string) (*domain.Voucher, error)

	// FindVoucherLines retrieves the ordered lines of a voucher.
	FindVoucherLines(ctx context.Context, voucherID string) ([]domain.VoucherLine, error)

	// ListVouchers retrieves a paginated list of the user's vouchers using
	// token-based pagination on (voucher_date, created_at), newest first.
	ListVouchers(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Voucher, *string, error)
}

// VoucherWriter defines write operations for voucher data.
type VoucherWriter interface {
	// SaveVoucher persists a voucher header and its lines in one transaction.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error

	// UpdateVoucher replaces a voucher's header fields and full line set in one
	// transaction.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error

	// UpdateVoucherStatus sets the status of an owned voucher.
	UpdateVoucherStatus(ctx context.Context, userID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error

	// DeleteVoucher removes an owned voucher and its lines. It yields
	// ErrConflict while any payment line references the voucher.
	DeleteVoucher(ctx context.Context, userID, voucherID string) error
}

// VoucherRepositoryFacade combines all voucher repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
