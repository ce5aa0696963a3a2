package accounting_test

import (
	"testing"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		accountType   string
		accountNumber string
		expected      domain.Category
	}{
		{"declared type keyword wins", "Current Asset", "1001", domain.CategoryAsset},
		{"number fallback agrees on 1001", "Custom", "1001", domain.CategoryAsset},
		{"keyword beats conflicting number", "Other Income", "1500", domain.CategoryRevenue},
		{"liability keyword", "Long-term Liability", "", domain.CategoryLiability},
		{"equity keyword", "Owner's Equity", "", domain.CategoryEquity},
		{"sales keyword maps to revenue", "Sales", "", domain.CategoryRevenue},
		{"cost keyword maps to expense", "Cost of Goods Sold", "", domain.CategoryExpense},
		{"number fallback asset", "Custom", "1200", domain.CategoryAsset},
		{"number fallback liability", "Custom", "2100", domain.CategoryLiability},
		{"30 prefix is revenue not equity", "Custom", "3010", domain.CategoryRevenue},
		{"3 prefix is equity", "Custom", "3100", domain.CategoryEquity},
		{"4 prefix is revenue", "Custom", "4200", domain.CategoryRevenue},
		{"5 prefix is expense", "Custom", "5600", domain.CategoryExpense},
		{"6 prefix is expense", "Custom", "6100", domain.CategoryExpense},
		{"7 prefix is expense", "Custom", "7300", domain.CategoryExpense},
		{"no match is unknown", "Custom", "9999", domain.CategoryUnknown},
		{"empty inputs are unknown", "", "", domain.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, accounting.Classify(tt.accountType, tt.accountNumber))
		})
	}
}

func TestIsCostOfSales(t *testing.T) {
	assert.True(t, accounting.IsCostOfSales("Cost of Goods Sold", "6100"))
	assert.True(t, accounting.IsCostOfSales("Raw Materials", ""))
	assert.True(t, accounting.IsCostOfSales("COGS - Hardware", ""))
	assert.True(t, accounting.IsCostOfSales("Freight", "5010"))
	assert.False(t, accounting.IsCostOfSales("Rent", "5100"))
	assert.False(t, accounting.IsCostOfSales("Misc", "5900"))
}

func TestIsOperatingExpense(t *testing.T) {
	assert.True(t, accounting.IsOperatingExpense("Office Rent", ""))
	assert.True(t, accounting.IsOperatingExpense("Staff Salary", ""))
	assert.True(t, accounting.IsOperatingExpense("Misc", "5100"))
	assert.True(t, accounting.IsOperatingExpense("Misc", "5200"))
	// Cost-of-sales takes precedence when both sets would match.
	assert.False(t, accounting.IsOperatingExpense("Operating Materials", ""))
	assert.False(t, accounting.IsOperatingExpense("Interest", "5900"))
}
