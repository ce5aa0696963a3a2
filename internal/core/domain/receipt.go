package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a flat record of money received. It does not touch the ledger.
// ReceiptNumber is unique per owner and auto-generated when not supplied.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"`
	UserID        string          `json:"userID"`
	ReceiptNumber string          `json:"receiptNumber"`
	Payer         string          `json:"payer"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	ReceiptDate   time.Time       `json:"receiptDate"`
	Method        string          `json:"method"`
	Description   string          `json:"description"`
	AuditFields
}
