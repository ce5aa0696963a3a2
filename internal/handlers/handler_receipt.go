package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/finbooks/finbooks_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:id", h.getReceipt)
		receipts.PUT("/:id", h.updateReceipt)
		receipts.DELETE("/:id", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Create a receipt
// @Description Creates a receipt, generating a receipt number when none is supplied
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create receipt"})
		}
		return
	}

	logger.Info("Receipt created", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// getReceipt godoc
// @Summary Get a receipt by ID
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve receipt"
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), userID, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
		} else {
			logger.Error("Failed to get receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves a paginated list of the user's receipts
// @Tags receipts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token from a previous page"
// @Param fromDate query string false "Earliest receipt date (YYYY-MM-DD)"
// @Param toDate query string false "Latest receipt date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to list receipts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list receipts"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateReceipt godoc
// @Summary Update a receipt
// @Description Updates an existing receipt with optimistic concurrency on the last update time
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 409 {object} ErrorResponse "Receipt modified concurrently"
// @Failure 500 {object} ErrorResponse "Failed to update receipt"
// @Security BearerAuth
// @Router /receipts/{id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), userID, receiptID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Receipt was modified concurrently, reload and retry"})
		} else {
			logger.Error("Failed to update receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to delete receipt"
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), userID, receiptID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
		} else {
			logger.Error("Failed to delete receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete receipt"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
