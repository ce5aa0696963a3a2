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
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
	}
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func buildPaymentLines(paymentID string, reqs []dto.CreatePaymentLineRequest) ([]domain.PaymentLine, error) {
	lines := make([]domain.PaymentLine, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for i, lr := range reqs {
		if !lr.AmountPaid.IsPositive() {
			return nil, apperrors.NewAppError(400, "allocation amounts must be positive", apperrors.ErrValidation)
		}
		if seen[lr.VoucherID] {
			return nil, apperrors.NewAppError(400, "a payment can allocate to each voucher only once", apperrors.ErrValidation)
		}
		seen[lr.VoucherID] = true
		lines[i] = domain.PaymentLine{
			LineID:     uuid.NewString(),
			PaymentID:  paymentID,
			VoucherID:  lr.VoucherID,
			AmountPaid: lr.AmountPaid,
		}
	}
	return lines, nil
}

func buildPaymentAttachments(paymentID string, reqs []dto.CreatePaymentAttachmentRequest) []domain.PaymentAttachment {
	attachments := make([]domain.PaymentAttachment, len(reqs))
	for i, ar := range reqs {
		attachments[i] = domain.PaymentAttachment{
			AttachmentID: uuid.NewString(),
			PaymentID:    paymentID,
			FileName:     ar.FileName,
			ContentType:  ar.ContentType,
			URL:          ar.URL,
		}
	}
	return attachments
}

// CreatePayment persists a payment with its voucher allocations and updates
// the status of every allocated voucher. A payment with no declared status is
// recorded as PAID, since draft payments never touch voucher statuses.
func (s *paymentService) CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, []domain.PaymentLine, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID); err != nil {
		s.LogError(ctx, err, "Funding account not found", slog.String("account_id", req.AccountID))
		return nil, nil, apperrors.NewAppError(400, "funding account not found", apperrors.ErrValidation)
	}

	paymentID := uuid.NewString()
	lines, err := buildPaymentLines(paymentID, req.Lines)
	if err != nil {
		return nil, nil, err
	}

	status := domain.PaymentPaid
	if req.Status != "" {
		status = domain.PaymentStatus(req.Status)
	}

	totalAmount := domain.AllocatedTotal(lines)
	if req.TotalAmount != nil {
		if req.TotalAmount.LessThan(totalAmount) {
			return nil, nil, apperrors.NewAppError(400, "total amount is less than the allocation sum", apperrors.ErrValidation)
		}
		totalAmount = *req.TotalAmount
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:     paymentID,
		UserID:        userID,
		PaymentNumber: req.PaymentNumber,
		PaymentDate:   req.PaymentDate,
		Payee:         req.Payee,
		Method:        req.Method,
		AccountID:     req.AccountID,
		TotalAmount:   totalAmount,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	attachments := buildPaymentAttachments(paymentID, req.Attachments)

	if err := s.paymentRepo.SavePayment(ctx, payment, lines, attachments); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_number", payment.PaymentNumber))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Payment created",
		slog.String("payment_id", paymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.Int("allocations", len(lines)))
	return &payment, lines, nil
}

// GetPaymentByID retrieves a payment with its allocation lines and attachments.
func (s *paymentService) GetPaymentByID(ctx context.Context, userID string, paymentID string) (*domain.Payment, []domain.PaymentLine, []domain.PaymentAttachment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
	if err != nil {
		return nil, nil, nil, err
	}
	lines, err := s.paymentRepo.FindPaymentLines(ctx, paymentID)
	if err != nil {
		return nil, nil, nil, err
	}
	attachments, err := s.paymentRepo.FindPaymentAttachments(ctx, paymentID)
	if err != nil {
		return nil, nil, nil, err
	}
	return payment, lines, attachments, nil
}

// ListPayments retrieves a paginated list of a user's payments.
func (s *paymentService) ListPayments(ctx context.Context, userID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}

	resp := &dto.ListPaymentsResponse{
		Payments:  make([]dto.PaymentResponse, len(payments)),
		NextToken: nextToken,
	}
	for i := range payments {
		resp.Payments[i] = dto.ToPaymentResponse(&payments[i])
	}
	return resp, nil
}

// UpdatePayment replaces a payment's allocations. A payment already finalized
// as PAID is immutable.
func (s *paymentService) UpdatePayment(ctx context.Context, userID string, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, []domain.PaymentLine, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if payment.Status == domain.PaymentPaid {
		return nil, nil, apperrors.NewAppError(409, "a paid payment cannot be edited", apperrors.ErrConflict)
	}

	if req.PaymentNumber != nil {
		payment.PaymentNumber = *req.PaymentNumber
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Payee != nil {
		payment.Payee = *req.Payee
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *req.AccountID); err != nil {
			return nil, nil, apperrors.NewAppError(400, "funding account not found", apperrors.ErrValidation)
		}
		payment.AccountID = *req.AccountID
	}
	if req.Status != nil {
		payment.Status = domain.PaymentStatus(*req.Status)
	}

	var lines []domain.PaymentLine
	if req.Lines != nil {
		lines, err = buildPaymentLines(paymentID, req.Lines)
		if err != nil {
			return nil, nil, err
		}
	} else {
		lines, err = s.paymentRepo.FindPaymentLines(ctx, paymentID)
		if err != nil {
			return nil, nil, err
		}
	}

	if req.TotalAmount != nil {
		if req.TotalAmount.LessThan(domain.AllocatedTotal(lines)) {
			return nil, nil, apperrors.NewAppError(400, "total amount is less than the allocation sum", apperrors.ErrValidation)
		}
		payment.TotalAmount = *req.TotalAmount
	} else if req.Lines != nil {
		payment.TotalAmount = domain.AllocatedTotal(lines)
	}

	var attachments []domain.PaymentAttachment
	if req.Attachments != nil {
		attachments = buildPaymentAttachments(paymentID, req.Attachments)
	} else {
		attachments, err = s.paymentRepo.FindPaymentAttachments(ctx, paymentID)
		if err != nil {
			return nil, nil, err
		}
	}

	payment.LastUpdatedAt = time.Now().UTC()
	payment.LastUpdatedBy = userID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment, lines, attachments); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Payment updated", slog.String("payment_id", paymentID))
	return payment, lines, nil
}

// DeletePayment removes a payment and recomputes the status of the vouchers it
// had allocations against. A payment already finalized as PAID is immutable.
func (s *paymentService) DeletePayment(ctx context.Context, userID string, paymentID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
	if err != nil {
		return err
	}
	if payment.Status == domain.PaymentPaid {
		return apperrors.NewAppError(409, "a paid payment cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.paymentRepo.DeletePayment(ctx, userID, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}
