package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the payment state of a voucher.
type VoucherStatus string

const (
	VoucherPending       VoucherStatus = "PENDING"
	VoucherPartiallyPaid VoucherStatus = "PARTIALLY_PAID"
	VoucherPaid          VoucherStatus = "PAID"
	VoucherVoid          VoucherStatus = "VOID"
)

// StatusForPayment derives a voucher's payment status from its total amount and
// the cumulative amount allocated by paid-status payments. VOID is never
// produced here; voiding is a separate, terminal transition.
func StatusForPayment(totalAmount, paidTotal decimal.Decimal) VoucherStatus {
	if paidTotal.GreaterThanOrEqual(totalAmount) && totalAmount.IsPositive() {
		return VoucherPaid
	}
	if paidTotal.IsPositive() {
		return VoucherPartiallyPaid
	}
	return VoucherPending
}

// Voucher is a journal entry header grouping debit/credit lines.
// VoucherNumber is unique per owner.
type Voucher struct {
	VoucherID       string          `json:"voucherID"`
	UserID          string          `json:"userID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherDate     time.Time       `json:"voucherDate"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          VoucherStatus   `json:"status"`
	Lines           []VoucherLine   `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// VoucherLine is one debit or credit leg of a voucher. Amount is always
// positive; IsDebit carries the polarity.
type VoucherLine struct {
	LineID      string          `json:"lineID"`
	VoucherID   string          `json:"voucherID"`
	AccountID   string          `json:"accountID"`
	IsDebit     bool            `json:"isDebit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineNo      int             `json:"lineNo"`
}

// DebitTotal sums the debit legs of the given lines.
func DebitTotal(lines []VoucherLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.IsDebit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// CreditTotal sums the credit legs of the given lines.
func CreditTotal(lines []VoucherLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if !l.IsDebit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// IsBalanced reports whether debits equal credits. An unbalanced voucher is
// flagged to the caller but still persisted.
func IsBalanced(lines []VoucherLine) bool {
	return DebitTotal(lines).Equal(CreditTotal(lines))
}
