package domain_test

import (
	"testing"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStatusForPayment(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		paid     string
		expected domain.VoucherStatus
	}{
		{"nothing paid", "500", "0", domain.VoucherPending},
		{"partially paid", "500", "300", domain.VoucherPartiallyPaid},
		{"exactly paid", "500", "500", domain.VoucherPaid},
		{"overpaid", "500", "600", domain.VoucherPaid},
		{"zero total stays pending", "0", "0", domain.VoucherPending},
		{"zero total with allocations is partial", "0", "100", domain.VoucherPartiallyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.StatusForPayment(amt(tt.total), amt(tt.paid))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVoucherLineTotals(t *testing.T) {
	lines := []domain.VoucherLine{
		{IsDebit: true, Amount: amt("300")},
		{IsDebit: true, Amount: amt("200")},
		{IsDebit: false, Amount: amt("500")},
	}

	assert.True(t, domain.DebitTotal(lines).Equal(amt("500")))
	assert.True(t, domain.CreditTotal(lines).Equal(amt("500")))
	assert.True(t, domain.IsBalanced(lines))

	unbalanced := append(lines, domain.VoucherLine{IsDebit: false, Amount: amt("0.01")})
	assert.False(t, domain.IsBalanced(unbalanced))
}

func TestIsBalanced_EmptyLines(t *testing.T) {
	assert.True(t, domain.IsBalanced(nil))
}

func TestAllocatedTotal(t *testing.T) {
	lines := []domain.PaymentLine{
		{AmountPaid: amt("120.50")},
		{AmountPaid: amt("79.50")},
	}
	assert.True(t, domain.AllocatedTotal(lines).Equal(amt("200")))
	assert.True(t, domain.AllocatedTotal(nil).IsZero())
}
