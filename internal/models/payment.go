package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database representation of a payment header.
// payment_number is unique per user_id.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	UserID        string          `db:"user_id"`
	PaymentNumber string          `db:"payment_number"`
	PaymentDate   time.Time       `db:"payment_date"`
	Payee         string          `db:"payee"`
	Method        string          `db:"method"`
	AccountID     string          `db:"account_id"` // Funding account
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	AuditFields
}

// PaymentLine allocates part of a payment to a voucher.
type PaymentLine struct {
	LineID     string          `db:"line_id"`
	PaymentID  string          `db:"payment_id"`
	VoucherID  string          `db:"voucher_id"`
	AmountPaid decimal.Decimal `db:"amount_paid"`
}

// PaymentAttachment is file metadata stored with a payment.
type PaymentAttachment struct {
	AttachmentID string `db:"attachment_id"`
	PaymentID    string `db:"payment_id"`
	FileName     string `db:"file_name"`
	ContentType  string `db:"content_type"`
	URL          string `db:"url"`
}
