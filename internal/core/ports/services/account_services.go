package services

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the accounts owned by a user, optionally filtered
	// by type keyword or active state.
	ListAccounts(ctx context.Context, userID string, params dto.ListAccountsParams) ([]domain.Account, error)

	// GetAccountBalance computes an account's polarity-adjusted balance up to
	// and including the given date string (YYYY-MM-DD, empty means today).
	GetAccountBalance(ctx context.Context, userID string, accountID string, asOfDate string) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates details of an existing account.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that is not referenced by any voucher line.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
