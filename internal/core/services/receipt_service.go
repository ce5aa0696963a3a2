package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/google/uuid"
)

// receiptService implements the ReceiptSvcFacade interface
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
	}
}

// Ensure receiptService implements the ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// CreateReceipt persists a new receipt, assigning a receipt number when the
// request carries none.
func (s *receiptService) CreateReceipt(ctx context.Context, userID string, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "receipt amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	receiptNumber := req.ReceiptNumber
	if receiptNumber == "" {
		// RCPT-20060102-150405.000000000 stays unique per owner at any
		// realistic request rate.
		receiptNumber = fmt.Sprintf("RCPT-%s", now.Format("20060102-150405.000000000"))
	}

	receipt := domain.Receipt{
		ReceiptID:     uuid.NewString(),
		UserID:        userID,
		ReceiptNumber: receiptNumber,
		Payer:         req.Payer,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		ReceiptDate:   req.ReceiptDate,
		Method:        req.Method,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("receipt_number", receiptNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt created", slog.String("receipt_id", receipt.ReceiptID), slog.String("receipt_number", receiptNumber))
	return &receipt, nil
}

// GetReceiptByID retrieves a specific receipt by its ID.
func (s *receiptService) GetReceiptByID(ctx context.Context, userID string, receiptID string) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, userID, receiptID)
}

// ListReceipts retrieves a paginated list of a user's receipts.
func (s *receiptService) ListReceipts(ctx context.Context, userID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	receipts, nextToken, err := s.receiptRepo.ListReceipts(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, err
	}
	return &dto.ListReceiptsResponse{
		Receipts:  dto.ToReceiptResponses(receipts),
		NextToken: nextToken,
	}, nil
}

// UpdateReceipt updates an existing receipt.
func (s *receiptService) UpdateReceipt(ctx context.Context, userID string, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	expectedUpdatedAt := receipt.LastUpdatedAt

	if req.ReceiptNumber != nil {
		receipt.ReceiptNumber = *req.ReceiptNumber
	}
	if req.Payer != nil {
		receipt.Payer = *req.Payer
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewAppError(400, "receipt amount must be positive", apperrors.ErrValidation)
		}
		receipt.Amount = *req.Amount
	}
	if req.CurrencyCode != nil {
		receipt.CurrencyCode = *req.CurrencyCode
	}
	if req.ReceiptDate != nil {
		receipt.ReceiptDate = *req.ReceiptDate
	}
	if req.Method != nil {
		receipt.Method = *req.Method
	}
	if req.Description != nil {
		receipt.Description = *req.Description
	}
	receipt.LastUpdatedAt = time.Now().UTC()
	receipt.LastUpdatedBy = userID

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt, expectedUpdatedAt); err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt updated", slog.String("receipt_id", receiptID))
	return receipt, nil
}

// DeleteReceipt removes a receipt.
func (s *receiptService) DeleteReceipt(ctx context.Context, userID string, receiptID string) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, userID, receiptID); err != nil {
		s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		return err
	}
	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}
