package repositories

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment owned by the user, without lines.
	FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error)

	// FindPaymentLines retrieves the lines of a payment.
	FindPaymentLines(ctx context.Context, paymentID string) ([]domain.PaymentLine, error)

	// FindPaymentAttachments retrieves the attachment metadata of a payment.
	FindPaymentAttachments(ctx context.Context, paymentID string) ([]domain.PaymentAttachment, error)

	// ListPayments retrieves a paginated list of the user's payments using
	// token-based pagination on (payment_date, created_at), newest first.
	ListPayments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// PaidTotalForVoucher sums amount_paid over payment lines whose payment has
	// status PAID, for one voucher.
	PaidTotalForVoucher(ctx context.Context, voucherID string) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data. Multi-step writes
// run in a single database transaction; the referenced voucher rows are locked
// before the already-paid re-check so concurrent allocations serialize.
type PaymentWriter interface {
	// SavePayment persists a payment with its lines and attachments, re-checks
	// each referenced voucher's remaining amount under a row lock (ErrConflict
	// when already fully paid), and recomputes the status of every referenced
	// voucher.
	SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error

	// UpdatePayment replaces a payment's header, lines and attachments in one
	// transaction, recomputing the status of vouchers referenced before and
	// after the change.
	UpdatePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error

	// DeletePayment removes an owned payment with its lines and attachments and
	// recomputes the status of the vouchers it referenced.
	DeletePayment(ctx context.Context, userID, paymentID string) error

	// RecomputeVoucherStatus rederives one owned voucher's payment status from
	// its paid allocations and persists it when changed. Void vouchers are
	// left untouched.
	RecomputeVoucherStatus(ctx context.Context, userID, voucherID string) (domain.VoucherStatus, error)
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
