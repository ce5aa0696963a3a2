package domain

import "time"

// User is an account owner. Every ledger entity is scoped to exactly one user.
type User struct {
	UserID             string     `json:"userID"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	IsActive           bool       `json:"isActive"`
	RefreshTokenHash   *string    `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
	AuditFields
}
