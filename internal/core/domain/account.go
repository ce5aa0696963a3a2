package domain

// Category is the financial-statement classification of an account.
// It is derived from the account's declared type and number, never stored.
type Category string

const (
	CategoryAsset     Category = "ASSET"
	CategoryLiability Category = "LIABILITY"
	CategoryEquity    Category = "EQUITY"
	CategoryRevenue   Category = "REVENUE"
	CategoryExpense   Category = "EXPENSE"
	CategoryUnknown   Category = "UNKNOWN"
)

// IsDebitNormal reports whether the category's natural positive balance
// accumulates on the debit side.
func (c Category) IsDebitNormal() bool {
	switch c {
	case CategoryLiability, CategoryEquity, CategoryRevenue:
		return false
	default:
		return true
	}
}

// Account is a chart-of-accounts entry. AccountType is the user's free-text
// declaration ("Asset", "Current Liability", ...); AccountNumber follows the
// usual 1xxx=Asset / 2xxx=Liability numbering and is unique per owner.
type Account struct {
	AccountID       string  `json:"accountID"` // Primary key (UUID)
	UserID          string  `json:"userID"`    // Owner; every query filters on it
	AccountNumber   string  `json:"accountNumber"`
	Name            string  `json:"name"`
	AccountType     string  `json:"accountType"`
	ParentAccountID *string `json:"parentAccountID,omitempty"` // Nullable self-reference
	SubAccountTag   *string `json:"subAccountTag,omitempty"`
	Description     string  `json:"description"`
	IsActive        bool    `json:"isActive"`
	AuditFields
}
