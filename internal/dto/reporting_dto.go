package dto

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// ReportLineResponse is one journal line as shown in the ledger reports.
type ReportLineResponse struct {
	VoucherID      string          `json:"voucherID"`
	VoucherNumber  string          `json:"voucherNumber"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	AccountID      string          `json:"accountID"`
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerResponse represents the general ledger report response.
type GeneralLedgerResponse struct {
	FromDate  string               `json:"fromDate"`
	ToDate    string               `json:"toDate"`
	AccountID *string              `json:"accountID,omitempty"` // Set when filtered to one account
	Entries   []ReportLineResponse `json:"entries"`
	Totals    struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToGeneralLedgerResponse converts a domain general ledger report to a DTO response.
func ToGeneralLedgerResponse(report *domain.GeneralLedgerReport) GeneralLedgerResponse {
	response := GeneralLedgerResponse{
		FromDate:  report.FromDate.Format(reportDateLayout),
		ToDate:    report.ToDate.Format(reportDateLayout),
		AccountID: report.AccountID,
		Entries:   make([]ReportLineResponse, len(report.Entries)),
	}
	for i, e := range report.Entries {
		response.Entries[i] = ReportLineResponse{
			VoucherID:      e.VoucherID,
			VoucherNumber:  e.VoucherNumber,
			Date:           e.VoucherDate.Format(reportDateLayout),
			Description:    e.Description,
			AccountID:      e.AccountID,
			AccountNumber:  e.AccountNumber,
			AccountName:    e.AccountName,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	response.Totals.Debit = report.TotalDebits
	response.Totals.Credit = report.TotalCredits
	return response
}

// TrialBalanceRowResponse represents a row in the trial balance report response.
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Category      string          `json:"category"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: report.AsOf.Format(reportDateLayout),
		Rows: make([]TrialBalanceRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:     row.AccountID,
			AccountNumber: row.AccountNumber,
			AccountName:   row.AccountName,
			Category:      string(row.Category),
			Debit:         row.Debit,
			Credit:        row.Credit,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// AccountLedgerResponse represents the single-account ledger report response.
type AccountLedgerResponse struct {
	AccountID      string               `json:"accountID"`
	AccountNumber  string               `json:"accountNumber"`
	AccountName    string               `json:"accountName"`
	FromDate       string               `json:"fromDate"`
	ToDate         string               `json:"toDate"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Entries        []ReportLineResponse `json:"entries"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
}

// ToAccountLedgerResponse converts a domain account ledger report to a DTO response.
func ToAccountLedgerResponse(report *domain.AccountLedgerReport) AccountLedgerResponse {
	response := AccountLedgerResponse{
		AccountID:      report.AccountID,
		AccountNumber:  report.AccountNumber,
		AccountName:    report.AccountName,
		FromDate:       report.FromDate.Format(reportDateLayout),
		ToDate:         report.ToDate.Format(reportDateLayout),
		OpeningBalance: report.OpeningBalance,
		Entries:        make([]ReportLineResponse, len(report.Entries)),
		ClosingBalance: report.ClosingBalance,
	}
	for i, e := range report.Entries {
		response.Entries[i] = ReportLineResponse{
			VoucherID:      e.VoucherID,
			VoucherNumber:  e.VoucherNumber,
			Date:           e.VoucherDate.Format(reportDateLayout),
			Description:    e.Description,
			AccountID:      e.AccountID,
			AccountNumber:  e.AccountNumber,
			AccountName:    e.AccountName,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	return response
}

// AccountAmountResponse represents an account with its amount in a financial report.
type AccountAmountResponse struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	responses := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		responses[i] = AccountAmountResponse{
			AccountID:     a.AccountID,
			AccountNumber: a.AccountNumber,
			Name:          a.Name,
			Amount:        a.Amount,
		}
	}
	return responses
}

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate: report.FromDate.Format(reportDateLayout),
		ToDate:   report.ToDate.Format(reportDateLayout),
		Revenue:  toAccountAmountResponses(report.Revenue),
		Expenses: toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        report.AsOf.Format(reportDateLayout),
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}

// PLComparisonResponse carries the headline figures of the comparison window.
type PLComparisonResponse struct {
	Kind              string          `json:"kind"`
	FromDate          string          `json:"fromDate"`
	ToDate            string          `json:"toDate"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	CostOfSales       decimal.Decimal `json:"costOfSales"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	OperatingIncome   decimal.Decimal `json:"operatingIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// ProfitAndLossResponse represents the profit and loss report response.
type ProfitAndLossResponse struct {
	FromDate          string                  `json:"fromDate"`
	ToDate            string                  `json:"toDate"`
	Revenue           []AccountAmountResponse `json:"revenue"`
	CostOfSales       []AccountAmountResponse `json:"costOfSales"`
	OperatingExpenses []AccountAmountResponse `json:"operatingExpenses"`
	OtherExpenses     []AccountAmountResponse `json:"otherExpenses"`
	Summary           struct {
		TotalRevenue           decimal.Decimal `json:"totalRevenue"`
		TotalCostOfSales       decimal.Decimal `json:"totalCostOfSales"`
		GrossProfit            decimal.Decimal `json:"grossProfit"`
		TotalOperatingExpenses decimal.Decimal `json:"totalOperatingExpenses"`
		OperatingIncome        decimal.Decimal `json:"operatingIncome"`
		TotalExpenses          decimal.Decimal `json:"totalExpenses"`
		NetIncome              decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
	Comparison *PLComparisonResponse `json:"comparison,omitempty"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate:          report.FromDate.Format(reportDateLayout),
		ToDate:            report.ToDate.Format(reportDateLayout),
		Revenue:           toAccountAmountResponses(report.Revenue),
		CostOfSales:       toAccountAmountResponses(report.CostOfSales),
		OperatingExpenses: toAccountAmountResponses(report.OperatingExpenses),
		OtherExpenses:     toAccountAmountResponses(report.OtherExpenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalCostOfSales = report.TotalCostOfSales
	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.TotalOperatingExpenses = report.TotalOperatingExpenses
	response.Summary.OperatingIncome = report.OperatingIncome
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	if report.Comparison != nil {
		response.Comparison = &PLComparisonResponse{
			Kind:              string(report.Comparison.Kind),
			FromDate:          report.Comparison.FromDate.Format(reportDateLayout),
			ToDate:            report.Comparison.ToDate.Format(reportDateLayout),
			TotalRevenue:      report.Comparison.TotalRevenue,
			CostOfSales:       report.Comparison.CostOfSales,
			GrossProfit:       report.Comparison.GrossProfit,
			OperatingExpenses: report.Comparison.OperatingExpenses,
			OperatingIncome:   report.Comparison.OperatingIncome,
			TotalExpenses:     report.Comparison.TotalExpenses,
			NetIncome:         report.Comparison.NetIncome,
		}
	}
	return response
}
