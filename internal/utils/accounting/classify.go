package accounting

import (
	"strings"

	"github.com/finbooks/finbooks_app/internal/core/domain"
)

// Keyword sets for the declared-type match. First category whose keyword is a
// case-insensitive substring of the declared type wins, in this order.
var categoryKeywords = []struct {
	category domain.Category
	words    []string
}{
	{domain.CategoryAsset, []string{"asset"}},
	{domain.CategoryLiability, []string{"liability"}},
	{domain.CategoryEquity, []string{"equity"}},
	{domain.CategoryRevenue, []string{"revenue", "income", "sales"}},
	{domain.CategoryExpense, []string{"expense", "cost"}},
}

// Classify maps an account's declared type and number to a statement category.
// The declared type is matched against keyword sets first; accounts with an
// unrecognized type fall back to the number-prefix convention ("1xxx" assets,
// "2xxx" liabilities, ...). Accounts matching neither are CategoryUnknown and
// excluded from statements.
func Classify(accountType, accountNumber string) domain.Category {
	lowered := strings.ToLower(accountType)
	for _, set := range categoryKeywords {
		for _, w := range set.words {
			if strings.Contains(lowered, w) {
				return set.category
			}
		}
	}
	return classifyByNumber(accountNumber)
}

func classifyByNumber(accountNumber string) domain.Category {
	// "30" is checked before the generic "3" prefix: 30xx is revenue in charts
	// that start equity at 31xx.
	if strings.HasPrefix(accountNumber, "30") {
		return domain.CategoryRevenue
	}
	switch {
	case strings.HasPrefix(accountNumber, "1"):
		return domain.CategoryAsset
	case strings.HasPrefix(accountNumber, "2"):
		return domain.CategoryLiability
	case strings.HasPrefix(accountNumber, "3"):
		return domain.CategoryEquity
	case strings.HasPrefix(accountNumber, "4"):
		return domain.CategoryRevenue
	case strings.HasPrefix(accountNumber, "5"), strings.HasPrefix(accountNumber, "6"), strings.HasPrefix(accountNumber, "7"):
		return domain.CategoryExpense
	default:
		return domain.CategoryUnknown
	}
}

var costOfSalesWords = []string{"cost of sales", "cost of goods sold", "cogs", "materials", "direct cost"}

var operatingWords = []string{"salary", "rent", "utilities", "office", "operating"}

// IsCostOfSales reports whether an expense account belongs in the
// cost-of-sales subtotal, by name keyword or "50" number prefix.
func IsCostOfSales(name, accountNumber string) bool {
	lowered := strings.ToLower(name)
	for _, w := range costOfSalesWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return strings.HasPrefix(accountNumber, "50")
}

// IsOperatingExpense reports whether an expense account belongs in the
// operating-expenses subtotal. Cost-of-sales wins when both would match.
func IsOperatingExpense(name, accountNumber string) bool {
	if IsCostOfSales(name, accountNumber) {
		return false
	}
	lowered := strings.ToLower(name)
	for _, w := range operatingWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return strings.HasPrefix(accountNumber, "51") || strings.HasPrefix(accountNumber, "52")
}
