package repositories

import (
	"context"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
// Every operation is owner-scoped: a missing row and a row owned by someone
// else are both reported as not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account owned by the user.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves several accounts owned by the user, keyed by ID.
	// IDs without a matching owned account are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts owned by the user, ordered by account number.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount inserts a new account. A duplicate account number for the
	// same owner yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates a mutable subset of an owned account's fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an owned account. It yields ErrConflict while any
	// voucher line or payment references the account.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
