package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the database representation of a receipt.
// receipt_number is unique per user_id.
type Receipt struct {
	ReceiptID     string          `db:"receipt_id"`
	UserID        string          `db:"user_id"`
	ReceiptNumber string          `db:"receipt_number"`
	Payer         string          `db:"payer"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	ReceiptDate   time.Time       `db:"receipt_date"`
	Method        string          `db:"method"`
	Description   string          `db:"description"`
	AuditFields
}
