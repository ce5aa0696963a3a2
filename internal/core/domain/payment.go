package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates whether a payment counts toward voucher paid totals.
type PaymentStatus string

const (
	PaymentDraft PaymentStatus = "DRAFT"
	PaymentPaid  PaymentStatus = "PAID"
)

// Payment records money leaving a funding account, allocated to one or more
// vouchers. Only lines on PAID payments count toward a voucher's paid total.
type Payment struct {
	PaymentID     string              `json:"paymentID"`
	UserID        string              `json:"userID"`
	PaymentNumber string              `json:"paymentNumber"`
	PaymentDate   time.Time           `json:"paymentDate"`
	Payee         string              `json:"payee"`
	Method        string              `json:"method"`
	AccountID     string              `json:"accountID"` // Funding account
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	Status        PaymentStatus       `json:"status"`
	Lines         []PaymentLine       `json:"lines,omitempty"`
	Attachments   []PaymentAttachment `json:"attachments,omitempty"`
	AuditFields
}

// PaymentLine allocates part of a payment to a single voucher.
type PaymentLine struct {
	LineID     string          `json:"lineID"`
	PaymentID  string          `json:"paymentID"`
	VoucherID  string          `json:"voucherID"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// PaymentAttachment is file metadata stored alongside a payment.
type PaymentAttachment struct {
	AttachmentID string `json:"attachmentID"`
	PaymentID    string `json:"paymentID"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType"`
	URL          string `json:"url"`
}

// AllocatedTotal sums the line allocations of a payment.
func AllocatedTotal(lines []PaymentLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.AmountPaid)
	}
	return total
}
