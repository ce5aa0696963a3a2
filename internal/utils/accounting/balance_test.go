package accounting_test

import (
	"testing"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNaturalBalance(t *testing.T) {
	debit := decimal.RequireFromString("800")
	credit := decimal.RequireFromString("300")

	tests := []struct {
		name     string
		category domain.Category
		expected string
	}{
		{"asset is debit normal", domain.CategoryAsset, "500"},
		{"expense is debit normal", domain.CategoryExpense, "500"},
		{"liability is credit normal", domain.CategoryLiability, "-500"},
		{"equity is credit normal", domain.CategoryEquity, "-500"},
		{"revenue is credit normal", domain.CategoryRevenue, "-500"},
		{"unknown treated as debit normal", domain.CategoryUnknown, "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.NaturalBalance(tt.category, debit, credit)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", got, tt.expected)
		})
	}
}

func TestRawBalance(t *testing.T) {
	got := accounting.RawBalance(decimal.RequireFromString("200"), decimal.RequireFromString("350"))
	assert.True(t, got.Equal(decimal.RequireFromString("-150")))
}

func TestSignedLineAmount(t *testing.T) {
	amount := decimal.RequireFromString("75.25")
	assert.True(t, accounting.SignedLineAmount(true, amount).Equal(amount))
	assert.True(t, accounting.SignedLineAmount(false, amount).Equal(amount.Neg()))
}
