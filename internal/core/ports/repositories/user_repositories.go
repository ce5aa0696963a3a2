package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

type UserReader interface {
	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if no
	// user exists with that ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound
	// if no user exists with that email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	// UpdateUser updates mutable profile fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdateRefreshToken stores the hash and expiry of the latest refresh
	// token, or clears both when the hash is nil.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
}

type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
