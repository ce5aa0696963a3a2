package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is the database representation of a journal entry header.
// voucher_number is unique per user_id.
type Voucher struct {
	VoucherID       string          `db:"voucher_id"`
	UserID          string          `db:"user_id"`
	VoucherNumber   string          `db:"voucher_number"`
	VoucherDate     time.Time       `db:"voucher_date"`
	TransactionType string          `db:"transaction_type"`
	Description     string          `db:"description"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	AuditFields
}

// VoucherLine is one debit or credit leg of a voucher.
type VoucherLine struct {
	LineID      string          `db:"line_id"`
	VoucherID   string          `db:"voucher_id"`
	AccountID   string          `db:"account_id"`
	IsDebit     bool            `db:"is_debit"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	LineNo      int             `db:"line_no"`
}
