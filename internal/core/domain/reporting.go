package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the raw per-account aggregate every report starts from:
// owner-scoped debit and credit totals over a date window, voided vouchers
// excluded. Classification happens afterwards, in the service layer.
type AccountActivity struct {
	AccountID     string
	AccountNumber string
	AccountName   string
	AccountType   string // Declared free-text type, input to the classifier
	DebitTotal    decimal.Decimal
	CreditTotal   decimal.Decimal
}

// JournalLine is one voucher line joined to its voucher and account metadata,
// as the ledger reports consume it.
type JournalLine struct {
	LineID        string
	VoucherID     string
	VoucherNumber string
	VoucherDate   time.Time
	Description   string // Line description, falling back to the voucher's
	AccountID     string
	AccountNumber string
	AccountName   string
	IsDebit       bool
	Amount        decimal.Decimal
	LineNo        int
}

// GeneralLedgerEntry is a journal line with the report's running balance.
type GeneralLedgerEntry struct {
	JournalLine
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerReport is the chronological listing of all journal lines with a
// running debit-minus-credit fold. It is a raw transaction listing: the fold
// starts at zero and is not seeded by any opening balance.
type GeneralLedgerReport struct {
	FromDate     time.Time
	ToDate       time.Time
	AccountID    *string // Set when filtered to a single account
	Entries      []GeneralLedgerEntry
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// TrialBalanceRow reports one account's net balance on a single side; the
// other column is always zero.
type TrialBalanceRow struct {
	AccountID     string
	AccountNumber string
	AccountName   string
	Category      Category
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// TrialBalanceReport lists each account with nonzero activity as of a date.
// TotalDebit equals TotalCredit whenever the underlying ledger is balanced.
type TrialBalanceReport struct {
	AsOf        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// AccountLedgerEntry is one period movement in a single account's ledger.
type AccountLedgerEntry struct {
	JournalLine
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
}

// AccountLedgerReport is the single-account ledger: a raw debit-minus-credit
// running total seeded by the opening balance of all prior activity,
// independent of the account's type.
type AccountLedgerReport struct {
	AccountID      string
	AccountNumber  string
	AccountName    string
	FromDate       time.Time
	ToDate         time.Time
	OpeningBalance decimal.Decimal
	Entries        []AccountLedgerEntry
	ClosingBalance decimal.Decimal
}

// AccountAmount is an account with its displayed report amount.
type AccountAmount struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

// IncomeStatementReport summarizes revenue against expenses for a period.
type IncomeStatementReport struct {
	FromDate      time.Time
	ToDate        time.Time
	Revenue       []AccountAmount
	Expenses      []AccountAmount
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// BalanceSheetReport lists assets, liabilities and equity as of a date.
// Amounts are displayed with normal credit balances as positive magnitudes, so
// TotalAssets == TotalLiabilities + TotalEquity for a balanced ledger.
type BalanceSheetReport struct {
	AsOf             time.Time
	Assets           []AccountAmount
	Liabilities      []AccountAmount
	Equity           []AccountAmount
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// PLComparisonKind selects the comparison window of a profit and loss report.
type PLComparisonKind string

const (
	ComparePreviousPeriod PLComparisonKind = "previous-period"
	ComparePreviousYear   PLComparisonKind = "previous-year"
)

// PLComparison carries the headline figures of the comparison window.
type PLComparison struct {
	Kind              PLComparisonKind
	FromDate          time.Time
	ToDate            time.Time
	TotalRevenue      decimal.Decimal
	CostOfSales       decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	OperatingIncome   decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetIncome         decimal.Decimal
}

// ProfitAndLossReport is the income statement with cost-of-sales and operating
// expense subtotals, optionally compared against a preceding window.
type ProfitAndLossReport struct {
	FromDate               time.Time
	ToDate                 time.Time
	Revenue                []AccountAmount
	CostOfSales            []AccountAmount
	OperatingExpenses      []AccountAmount
	OtherExpenses          []AccountAmount // Uncategorized expenses; in totals, in no subtotal
	TotalRevenue           decimal.Decimal
	TotalCostOfSales       decimal.Decimal
	GrossProfit            decimal.Decimal
	TotalOperatingExpenses decimal.Decimal
	OperatingIncome        decimal.Decimal
	TotalExpenses          decimal.Decimal
	NetIncome              decimal.Decimal
	Comparison             *PLComparison
}
