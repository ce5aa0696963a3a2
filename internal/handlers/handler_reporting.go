package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/finbooks/finbooks_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/general-ledger", h.getGeneralLedger)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/account-ledger/:accountID", h.getAccountLedger)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
	}
}

// parsePeriod reads fromDate/toDate query parameters, defaulting to the
// current month-to-date window.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	defaultFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	fromStr := c.DefaultQuery("fromDate", defaultFrom.Format(reportDateLayout))
	toStr := c.DefaultQuery("toDate", now.Format(reportDateLayout))

	from, err := time.Parse(reportDateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fromDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(reportDateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid toDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// parseAsOf reads the asOf query parameter, defaulting to today.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	asOfStr := c.DefaultQuery("asOf", time.Now().UTC().Format(reportDateLayout))
	asOf, err := time.Parse(reportDateLayout, asOfStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return asOf, true
}

// getGeneralLedger godoc
// @Summary Generate the general ledger
// @Description Lists every journal line in the period with a running balance
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param accountId query string false "Restrict the listing to one account"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	var accountID *string
	if v := c.Query("accountId"); v != "" {
		accountID = &v
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), userID, from, to, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		} else {
			logger.Error("Failed to generate general ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate general ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(report))
}

// getTrialBalance godoc
// @Summary Generate a trial balance
// @Description Aggregates per-account net balances as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), userID, asOf)
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getAccountLedger godoc
// @Summary Generate a single-account ledger
// @Description Lists one account's lines with raw opening and closing balances
// @Tags reports
// @Produce json
// @Param accountID path string true "Account ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/account-ledger/{accountID} [get]
func (h *reportingHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.AccountLedger(c.Request.Context(), userID, accountID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		} else {
			logger.Error("Failed to generate account ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate account ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(report))
}

// getIncomeStatement godoc
// @Summary Generate an income statement
// @Description Summarises revenue and expense balances over the period
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate income statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Reports assets, liabilities and equity as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), userID, asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate a profit and loss report
// @Description Splits expenses into cost of sales and operating expenses, optionally with a prior-window comparison
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param compare query string false "Comparison window: previous-period or previous-year"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid input or range over 10 years"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	compare := domain.PLComparisonKind(c.Query("compare"))

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), userID, from, to, compare)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to generate profit and loss", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate profit and loss"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
