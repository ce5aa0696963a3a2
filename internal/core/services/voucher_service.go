package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// voucherService implements the VoucherSvcFacade interface
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure voucherService implements the VoucherSvcFacade interface
var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// buildLines validates line requests and converts them to domain lines.
// Every referenced account must exist and belong to the user, and every
// amount must be positive.
func (s *voucherService) buildLines(ctx context.Context, userID, voucherID string, reqs []dto.CreateVoucherLineRequest) ([]domain.VoucherLine, error) {
	accountIDs := make([]string, 0, len(reqs))
	for _, lr := range reqs {
		accountIDs = append(accountIDs, lr.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, userID, accountIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.VoucherLine, len(reqs))
	for i, lr := range reqs {
		if !lr.Amount.IsPositive() {
			return nil, apperrors.NewAppError(400, "line amounts must be positive", apperrors.ErrValidation)
		}
		if _, ok := accounts[lr.AccountID]; !ok {
			return nil, apperrors.NewAppError(400, "account "+lr.AccountID+" not found", apperrors.ErrValidation)
		}
		lines[i] = domain.VoucherLine{
			LineID:      uuid.NewString(),
			VoucherID:   voucherID,
			AccountID:   lr.AccountID,
			IsDebit:     lr.IsDebit,
			Amount:      lr.Amount,
			Description: lr.Description,
			LineNo:      i + 1,
		}
	}
	return lines, nil
}

// CreateVoucher persists a new voucher with its lines. An imbalanced voucher
// is still persisted; the handler surfaces balanced=false to the caller.
func (s *voucherService) CreateVoucher(ctx context.Context, userID string, req dto.CreateVoucherRequest) (*domain.Voucher, []domain.VoucherLine, error) {
	voucherID := uuid.NewString()
	lines, err := s.buildLines(ctx, userID, voucherID, req.Lines)
	if err != nil {
		return nil, nil, err
	}

	totalAmount := domain.DebitTotal(lines)
	if req.TotalAmount != nil {
		if !req.TotalAmount.IsPositive() {
			return nil, nil, apperrors.NewAppError(400, "total amount must be positive", apperrors.ErrValidation)
		}
		totalAmount = *req.TotalAmount
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID:       voucherID,
		UserID:          userID,
		VoucherNumber:   req.VoucherNumber,
		VoucherDate:     req.VoucherDate,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		TotalAmount:     totalAmount,
		Status:          domain.VoucherPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if !domain.IsBalanced(lines) {
		s.LogInfo(ctx, "Voucher debits do not equal credits",
			slog.String("voucher_number", voucher.VoucherNumber),
			slog.String("debit_total", domain.DebitTotal(lines).String()),
			slog.String("credit_total", domain.CreditTotal(lines).String()))
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, lines); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_number", voucher.VoucherNumber))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Voucher created", slog.String("voucher_id", voucherID), slog.String("voucher_number", voucher.VoucherNumber))
	return &voucher, lines, nil
}

// GetVoucherByID retrieves a specific voucher with its lines.
func (s *voucherService) GetVoucherByID(ctx context.Context, userID string, voucherID string) (*domain.Voucher, []domain.VoucherLine, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, userID, voucherID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.voucherRepo.FindVoucherLines(ctx, voucherID)
	if err != nil {
		return nil, nil, err
	}
	return voucher, lines, nil
}

// ListVouchers retrieves a paginated list of a user's vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, err
	}

	resp := &dto.ListVouchersResponse{
		Vouchers:  make([]dto.VoucherResponse, 0, len(vouchers)),
		NextToken: nextToken,
	}
	for i := range vouchers {
		lines, err := s.voucherRepo.FindVoucherLines(ctx, vouchers[i].VoucherID)
		if err != nil {
			return nil, err
		}
		resp.Vouchers = append(resp.Vouchers, dto.ToVoucherResponse(&vouchers[i], lines))
	}
	return resp, nil
}

// UpdateVoucher replaces a voucher's header fields and lines. Vouchers with
// paid allocations reject edits.
func (s *voucherService) UpdateVoucher(ctx context.Context, userID string, voucherID string, req dto.UpdateVoucherRequest) (*domain.Voucher, []domain.VoucherLine, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, userID, voucherID)
	if err != nil {
		return nil, nil, err
	}
	if voucher.Status == domain.VoucherPaid {
		return nil, nil, apperrors.NewAppError(409, "a fully paid voucher cannot be edited", apperrors.ErrConflict)
	}
	if voucher.Status == domain.VoucherVoid {
		return nil, nil, apperrors.NewAppError(409, "a void voucher cannot be edited", apperrors.ErrConflict)
	}

	if req.VoucherNumber != nil {
		voucher.VoucherNumber = *req.VoucherNumber
	}
	if req.VoucherDate != nil {
		voucher.VoucherDate = *req.VoucherDate
	}
	if req.TransactionType != nil {
		voucher.TransactionType = *req.TransactionType
	}
	if req.Description != nil {
		voucher.Description = *req.Description
	}

	var lines []domain.VoucherLine
	if req.Lines != nil {
		lines, err = s.buildLines(ctx, userID, voucherID, req.Lines)
		if err != nil {
			return nil, nil, err
		}
	} else {
		lines, err = s.voucherRepo.FindVoucherLines(ctx, voucherID)
		if err != nil {
			return nil, nil, err
		}
	}

	if req.TotalAmount != nil {
		if !req.TotalAmount.IsPositive() {
			return nil, nil, apperrors.NewAppError(400, "total amount must be positive", apperrors.ErrValidation)
		}
		voucher.TotalAmount = *req.TotalAmount
	} else if req.Lines != nil {
		voucher.TotalAmount = domain.DebitTotal(lines)
	}

	voucher.LastUpdatedAt = time.Now().UTC()
	voucher.LastUpdatedBy = userID

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher, lines); err != nil {
		s.LogError(ctx, err, "Failed to update voucher", slog.String("voucher_id", voucherID))
		return nil, nil, err
	}

	// The declared total may have changed relative to existing allocations.
	if _, err := s.paymentRepo.RecomputeVoucherStatus(ctx, userID, voucherID); err != nil {
		s.LogError(ctx, err, "Failed to recompute voucher status after update", slog.String("voucher_id", voucherID))
		return nil, nil, err
	}

	updated, err := s.voucherRepo.FindVoucherByID(ctx, userID, voucherID)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "Voucher updated", slog.String("voucher_id", voucherID))
	return updated, lines, nil
}

// VoidVoucher marks a voucher VOID, excluding it from reports and balances.
func (s *voucherService) VoidVoucher(ctx context.Context, userID string, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, userID, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status == domain.VoucherVoid {
		return nil, apperrors.NewAppError(409, "voucher is already void", apperrors.ErrConflict)
	}

	paidTotal, err := s.paymentRepo.PaidTotalForVoucher(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if paidTotal.GreaterThan(decimal.Zero) {
		return nil, apperrors.NewAppError(409, "a voucher with paid allocations cannot be voided", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, userID, voucherID, domain.VoucherVoid, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void voucher", slog.String("voucher_id", voucherID))
		return nil, err
	}

	voucher.Status = domain.VoucherVoid
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = userID
	s.LogInfo(ctx, "Voucher voided", slog.String("voucher_id", voucherID))
	return voucher, nil
}

// DeleteVoucher removes a voucher with no payment allocations.
func (s *voucherService) DeleteVoucher(ctx context.Context, userID string, voucherID string) error {
	if err := s.voucherRepo.DeleteVoucher(ctx, userID, voucherID); err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		return err
	}
	s.LogInfo(ctx, "Voucher deleted", slog.String("voucher_id", voucherID))
	return nil
}

// UpdateVoucherStatus recomputes a voucher's payment status from its paid
// allocations and persists it. The recompute is idempotent.
func (s *voucherService) UpdateVoucherStatus(ctx context.Context, userID string, voucherID string) (domain.VoucherStatus, error) {
	status, err := s.paymentRepo.RecomputeVoucherStatus(ctx, userID, voucherID)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute voucher status", slog.String("voucher_id", voucherID))
		return "", err
	}
	return status, nil
}
