package dto

import (
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountNumber   string  `json:"accountNumber" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	AccountType     string  `json:"accountType" binding:"required"` // Free text, e.g. "Current Asset"
	ParentAccountID *string `json:"parentAccountID"`                // Optional, use pointer for nullability
	SubAccountTag   *string `json:"subAccountTag"`                  // Optional
	Description     string  `json:"description"`                    // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	AccountNumber *string `json:"accountNumber"`
	Name          *string `json:"name"`
	AccountType   *string `json:"accountType"`
	SubAccountTag *string `json:"subAccountTag"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	AccountNumber   string    `json:"accountNumber"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	Category        string    `json:"category"` // Derived classification, not stored
	ParentAccountID string    `json:"parentAccountID"` // Empty string if null in DB
	SubAccountTag   string    `json:"subAccountTag"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy   string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account, category domain.Category) AccountResponse {
	resp := AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Category:      string(category),
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
	if acc.ParentAccountID != nil {
		resp.ParentAccountID = *acc.ParentAccountID
	}
	if acc.SubAccountTag != nil {
		resp.SubAccountTag = *acc.SubAccountTag
	}
	return resp
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      string          `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType *string `form:"accountType"`
	IsActive    *bool   `form:"isActive"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
