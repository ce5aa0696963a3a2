package dto

import (
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest defines the data needed to record a receipt.
// ReceiptNumber is optional; one is generated when absent.
type CreateReceiptRequest struct {
	ReceiptNumber string          `json:"receiptNumber"`
	Payer         string          `json:"payer" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode"`
	ReceiptDate   time.Time       `json:"receiptDate" binding:"required" time_format:"2006-01-02"`
	Method        string          `json:"method"`
	Description   string          `json:"description"`
}

// UpdateReceiptRequest defines the data allowed for updating a receipt.
type UpdateReceiptRequest struct {
	ReceiptNumber *string          `json:"receiptNumber"`
	Payer         *string          `json:"payer"`
	Amount        *decimal.Decimal `json:"amount"`
	CurrencyCode  *string          `json:"currencyCode"`
	ReceiptDate   *time.Time       `json:"receiptDate" time_format:"2006-01-02"`
	Method        *string          `json:"method"`
	Description   *string          `json:"description"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID     string          `json:"receiptID"`
	ReceiptNumber string          `json:"receiptNumber"`
	Payer         string          `json:"payer"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	ReceiptDate   time.Time       `json:"receiptDate"`
	Method        string          `json:"method"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListReceiptsParams defines query parameters for listing receipts.
type ListReceiptsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	FromDate  *string `form:"fromDate"` // YYYY-MM-DD
	ToDate    *string `form:"toDate"`   // YYYY-MM-DD
}

// ListReceiptsResponse wraps a page of receipts with the continuation token.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		ReceiptNumber: r.ReceiptNumber,
		Payer:         r.Payer,
		Amount:        r.Amount,
		CurrencyCode:  r.CurrencyCode,
		ReceiptDate:   r.ReceiptDate,
		Method:        r.Method,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToReceiptResponses converts a slice of domain.Receipt to []ReceiptResponse.
func ToReceiptResponses(receipts []domain.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = ToReceiptResponse(&r)
	}
	return responses
}
