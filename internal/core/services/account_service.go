package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/finbooks/finbooks_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, reportingRepo portsrepo.ReportingRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		UserID:          userID,
		AccountNumber:   strings.TrimSpace(req.AccountNumber),
		Name:            strings.TrimSpace(req.Name),
		AccountType:     strings.TrimSpace(req.AccountType),
		ParentAccountID: req.ParentAccountID,
		SubAccountTag:   req.SubAccountTag,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if account.AccountNumber == "" || account.Name == "" {
		return nil, apperrors.NewAppError(400, "account number and name are required", apperrors.ErrValidation)
	}

	if account.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *account.ParentAccountID); err != nil {
			s.LogError(ctx, err, "Parent account not found", slog.String("parent_account_id", *account.ParentAccountID))
			return nil, apperrors.NewAppError(400, "parent account not found", apperrors.ErrValidation)
		}
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_number", account.AccountNumber))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the accounts owned by a user, optionally filtered.
func (s *accountService) ListAccounts(ctx context.Context, userID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	if params.AccountType == nil && params.IsActive == nil {
		return accounts, nil
	}

	filtered := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if params.AccountType != nil && !strings.EqualFold(acc.AccountType, *params.AccountType) {
			continue
		}
		if params.IsActive != nil && acc.IsActive != *params.IsActive {
			continue
		}
		filtered = append(filtered, acc)
	}
	return filtered, nil
}

// GetAccountBalance computes an account's polarity-adjusted balance up to and
// including the given date (YYYY-MM-DD, empty means today).
func (s *accountService) GetAccountBalance(ctx context.Context, userID string, accountID string, asOfDate string) (decimal.Decimal, error) {
	asOf := time.Now().UTC()
	if asOfDate != "" {
		parsed, err := time.Parse("2006-01-02", asOfDate)
		if err != nil {
			return decimal.Zero, apperrors.NewAppError(400, "invalid asOf date, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		asOf = parsed
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	debitTotal, creditTotal, err := s.reportingRepo.SumAccountActivity(ctx, userID, accountID, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account activity", slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	category := accounting.Classify(account.AccountType, account.AccountNumber)
	return accounting.NaturalBalance(category, debitTotal, creditTotal), nil
}

// UpdateAccount updates details of an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.AccountNumber != nil {
		account.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.AccountType != nil {
		account.AccountType = strings.TrimSpace(*req.AccountType)
	}
	if req.SubAccountTag != nil {
		account.SubAccountTag = req.SubAccountTag
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if account.AccountNumber == "" || account.Name == "" {
		return nil, apperrors.NewAppError(400, "account number and name cannot be empty", apperrors.ErrValidation)
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account that is not referenced by any voucher line.
func (s *accountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
