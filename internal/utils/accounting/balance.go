package accounting

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NaturalBalance returns an account's balance signed by its normal side:
// debit minus credit for debit-normal categories (Asset, Expense), credit
// minus debit for credit-normal ones (Liability, Equity, Revenue). Unknown
// accounts are treated as debit-normal.
func NaturalBalance(category domain.Category, debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	if category.IsDebitNormal() {
		return debitTotal.Sub(creditTotal)
	}
	return creditTotal.Sub(debitTotal)
}

// RawBalance is the unflipped debit-minus-credit total, used wherever a report
// needs the raw running figure independent of account type.
func RawBalance(debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	return debitTotal.Sub(creditTotal)
}

// SignedLineAmount is a line's contribution to a raw running balance:
// +amount for a debit leg, -amount for a credit leg.
func SignedLineAmount(isDebit bool, amount decimal.Decimal) decimal.Decimal {
	if isDebit {
		return amount
	}
	return amount.Neg()
}
