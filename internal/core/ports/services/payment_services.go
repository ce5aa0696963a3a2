package services

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its allocation lines and attachments.
	GetPaymentByID(ctx context.Context, userID string, paymentID string) (*domain.Payment, []domain.PaymentLine, []domain.PaymentAttachment, error)

	// ListPayments retrieves a paginated list of a user's payments.
	ListPayments(ctx context.Context, userID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment persists a payment with its voucher allocations and
	// updates the status of every allocated voucher.
	CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, []domain.PaymentLine, error)

	// UpdatePayment replaces a payment's allocations and recomputes the status
	// of every voucher touched before or after the change.
	UpdatePayment(ctx context.Context, userID string, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, []domain.PaymentLine, error)

	// DeletePayment removes a payment and recomputes the status of the
	// vouchers it had allocations against.
	DeletePayment(ctx context.Context, userID string, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
