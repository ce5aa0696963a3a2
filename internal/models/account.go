package models

// Account is the database representation of a chart-of-accounts entry.
// account_number is unique per user_id.
type Account struct {
	AccountID       string  `db:"account_id"`
	UserID          string  `db:"user_id"`
	AccountNumber   string  `db:"account_number"`
	Name            string  `db:"name"`
	AccountType     string  `db:"account_type"`
	ParentAccountID *string `db:"parent_account_id"` // Nullable
	SubAccountTag   *string `db:"sub_account_tag"`   // Nullable
	Description     string  `db:"description"`
	IsActive        bool    `db:"is_active"`
	AuditFields
}
