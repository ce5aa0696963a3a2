package services

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipt data
type ReceiptReaderSvc interface {
	// GetReceiptByID retrieves a specific receipt by its ID.
	GetReceiptByID(ctx context.Context, userID string, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated list of a user's receipts.
	ListReceipts(ctx context.Context, userID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)
}

// ReceiptWriterSvc defines write operations for receipt data
type ReceiptWriterSvc interface {
	// CreateReceipt persists a new receipt, assigning a receipt number when
	// the request carries none.
	CreateReceipt(ctx context.Context, userID string, req dto.CreateReceiptRequest) (*domain.Receipt, error)

	// UpdateReceipt updates an existing receipt.
	UpdateReceipt(ctx context.Context, userID string, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error)

	// DeleteReceipt removes a receipt.
	DeleteReceipt(ctx context.Context, userID string, receiptID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
