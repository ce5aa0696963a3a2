package dto

import (
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherLineRequest defines one debit or credit leg of a voucher.
type CreateVoucherLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	IsDebit     bool            `json:"isDebit"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CreateVoucherRequest defines the data needed to create a voucher with lines.
type CreateVoucherRequest struct {
	VoucherNumber   string                     `json:"voucherNumber" binding:"required"`
	VoucherDate     time.Time                  `json:"voucherDate" binding:"required" time_format:"2006-01-02"`
	TransactionType string                     `json:"transactionType"`
	Description     string                     `json:"description"`
	TotalAmount     *decimal.Decimal           `json:"totalAmount"` // Defaults to the debit-leg sum
	Lines           []CreateVoucherLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateVoucherRequest replaces the voucher header and its full line set.
type UpdateVoucherRequest struct {
	VoucherNumber   *string                    `json:"voucherNumber"`
	VoucherDate     *time.Time                 `json:"voucherDate" time_format:"2006-01-02"`
	TransactionType *string                    `json:"transactionType"`
	Description     *string                    `json:"description"`
	TotalAmount     *decimal.Decimal           `json:"totalAmount"`
	Lines           []CreateVoucherLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// VoucherLineResponse defines the data returned for a voucher line.
type VoucherLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	IsDebit     bool            `json:"isDebit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineNo      int             `json:"lineNo"`
}

// VoucherResponse defines the data returned for a voucher header.
type VoucherResponse struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherDate     time.Time       `json:"voucherDate"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	Balanced        bool            `json:"balanced"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// GetVoucherResponse combines a voucher header with its lines.
type GetVoucherResponse struct {
	Voucher VoucherResponse       `json:"voucher"`
	Lines   []VoucherLineResponse `json:"lines"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	FromDate  *string `form:"fromDate"` // YYYY-MM-DD
	ToDate    *string `form:"toDate"`   // YYYY-MM-DD
	Status    *string `form:"status"`
}

// ListVouchersResponse wraps a page of vouchers with the continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherLineResponse converts a domain.VoucherLine to VoucherLineResponse DTO.
func ToVoucherLineResponse(line *domain.VoucherLine) VoucherLineResponse {
	return VoucherLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		IsDebit:     line.IsDebit,
		Amount:      line.Amount,
		Description: line.Description,
		LineNo:      line.LineNo,
	}
}

// ToVoucherLineResponses converts a slice of domain.VoucherLine to []VoucherLineResponse.
func ToVoucherLineResponses(lines []domain.VoucherLine) []VoucherLineResponse {
	responses := make([]VoucherLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToVoucherLineResponse(&line)
	}
	return responses
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher, lines []domain.VoucherLine) VoucherResponse {
	return VoucherResponse{
		VoucherID:       v.VoucherID,
		VoucherNumber:   v.VoucherNumber,
		VoucherDate:     v.VoucherDate,
		TransactionType: v.TransactionType,
		Description:     v.Description,
		TotalAmount:     v.TotalAmount,
		Status:          string(v.Status),
		Balanced:        domain.IsBalanced(lines),
		CreatedAt:       v.CreatedAt,
		CreatedBy:       v.CreatedBy,
		LastUpdatedAt:   v.LastUpdatedAt,
		LastUpdatedBy:   v.LastUpdatedBy,
	}
}

// ToGetVoucherResponse combines a voucher and its lines into the GET response.
func ToGetVoucherResponse(v *domain.Voucher, lines []domain.VoucherLine) GetVoucherResponse {
	return GetVoucherResponse{
		Voucher: ToVoucherResponse(v, lines),
		Lines:   ToVoucherLineResponses(lines),
	}
}
