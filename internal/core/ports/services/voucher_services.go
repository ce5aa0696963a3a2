package services

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher data
type VoucherReaderSvc interface {
	// GetVoucherByID retrieves a specific voucher with its lines.
	GetVoucherByID(ctx context.Context, userID string, voucherID string) (*domain.Voucher, []domain.VoucherLine, error)

	// ListVouchers retrieves a paginated list of a user's vouchers.
	ListVouchers(ctx context.Context, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

// VoucherWriterSvc defines write operations for voucher data
type VoucherWriterSvc interface {
	// CreateVoucher persists a new voucher with its lines.
	CreateVoucher(ctx context.Context, userID string, req dto.CreateVoucherRequest) (*domain.Voucher, []domain.VoucherLine, error)

	// UpdateVoucher replaces a voucher's header fields and lines. Vouchers
	// with paid allocations reject edits with apperrors.ErrConflict.
	UpdateVoucher(ctx context.Context, userID string, voucherID string, req dto.UpdateVoucherRequest) (*domain.Voucher, []domain.VoucherLine, error)

	// VoidVoucher marks a voucher VOID, excluding it from reports and
	// balances. Vouchers with paid allocations cannot be voided.
	VoidVoucher(ctx context.Context, userID string, voucherID string) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher with no payment allocations.
	DeleteVoucher(ctx context.Context, userID string, voucherID string) error

	// UpdateVoucherStatus recomputes a voucher's payment status from its paid
	// allocations and persists it. Returns the resulting status.
	UpdateVoucherStatus(ctx context.Context, userID string, voucherID string) (domain.VoucherStatus, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
