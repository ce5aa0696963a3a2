package dto

import (
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentLineRequest allocates part of a payment to a voucher.
type CreatePaymentLineRequest struct {
	VoucherID  string          `json:"voucherID" binding:"required"`
	AmountPaid decimal.Decimal `json:"amountPaid" binding:"required"`
}

// CreatePaymentAttachmentRequest carries file metadata for a payment.
type CreatePaymentAttachmentRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
	URL         string `json:"url" binding:"required"`
}

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	PaymentNumber string                           `json:"paymentNumber" binding:"required"`
	PaymentDate   time.Time                        `json:"paymentDate" binding:"required" time_format:"2006-01-02"`
	Payee         string                           `json:"payee"`
	Method        string                           `json:"method"`
	AccountID     string                           `json:"accountID" binding:"required"` // Funding account
	TotalAmount   *decimal.Decimal                 `json:"totalAmount"` // Defaults to the allocation sum
	Status        string                           `json:"status" binding:"omitempty,oneof=DRAFT PAID"`
	Lines         []CreatePaymentLineRequest       `json:"lines" binding:"required,min=1,dive"`
	Attachments   []CreatePaymentAttachmentRequest `json:"attachments" binding:"omitempty,dive"`
}

// UpdatePaymentRequest replaces the payment header and its full allocation set.
type UpdatePaymentRequest struct {
	PaymentNumber *string                          `json:"paymentNumber"`
	PaymentDate   *time.Time                       `json:"paymentDate" time_format:"2006-01-02"`
	Payee         *string                          `json:"payee"`
	Method        *string                          `json:"method"`
	AccountID     *string                          `json:"accountID"`
	TotalAmount   *decimal.Decimal                 `json:"totalAmount"`
	Status        *string                          `json:"status" binding:"omitempty,oneof=DRAFT PAID"`
	Lines         []CreatePaymentLineRequest       `json:"lines" binding:"omitempty,min=1,dive"`
	Attachments   []CreatePaymentAttachmentRequest `json:"attachments" binding:"omitempty,dive"`
}

// PaymentLineResponse defines the data returned for a payment allocation.
type PaymentLineResponse struct {
	LineID     string          `json:"lineID"`
	VoucherID  string          `json:"voucherID"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// PaymentAttachmentResponse defines the data returned for a payment attachment.
type PaymentAttachmentResponse struct {
	AttachmentID string `json:"attachmentID"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType"`
	URL          string `json:"url"`
}

// PaymentResponse defines the data returned for a payment header.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	PaymentNumber string          `json:"paymentNumber"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Payee         string          `json:"payee"`
	Method        string          `json:"method"`
	AccountID     string          `json:"accountID"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// GetPaymentResponse combines a payment with its allocations and attachments.
type GetPaymentResponse struct {
	Payment     PaymentResponse             `json:"payment"`
	Lines       []PaymentLineResponse       `json:"lines"`
	Attachments []PaymentAttachmentResponse `json:"attachments"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	FromDate  *string `form:"fromDate"` // YYYY-MM-DD
	ToDate    *string `form:"toDate"`   // YYYY-MM-DD
}

// ListPaymentsResponse wraps a page of payments with the continuation token.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		PaymentNumber: p.PaymentNumber,
		PaymentDate:   p.PaymentDate,
		Payee:         p.Payee,
		Method:        p.Method,
		AccountID:     p.AccountID,
		TotalAmount:   p.TotalAmount,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToPaymentLineResponses converts a slice of domain.PaymentLine to []PaymentLineResponse.
func ToPaymentLineResponses(lines []domain.PaymentLine) []PaymentLineResponse {
	responses := make([]PaymentLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = PaymentLineResponse{
			LineID:     line.LineID,
			VoucherID:  line.VoucherID,
			AmountPaid: line.AmountPaid,
		}
	}
	return responses
}

// ToPaymentAttachmentResponses converts domain attachments to DTOs.
func ToPaymentAttachmentResponses(attachments []domain.PaymentAttachment) []PaymentAttachmentResponse {
	responses := make([]PaymentAttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = PaymentAttachmentResponse{
			AttachmentID: a.AttachmentID,
			FileName:     a.FileName,
			ContentType:  a.ContentType,
			URL:          a.URL,
		}
	}
	return responses
}

// ToGetPaymentResponse combines a payment, its lines and attachments.
func ToGetPaymentResponse(p *domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) GetPaymentResponse {
	return GetPaymentResponse{
		Payment:     ToPaymentResponse(p),
		Lines:       ToPaymentLineResponses(lines),
		Attachments: ToPaymentAttachmentResponses(attachments),
	}
}
