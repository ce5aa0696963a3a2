package models

import (
	"database/sql"
)

// User represents a user row, including authentication columns.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}
