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

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.PUT("/:id", h.updateVoucher)
		vouchers.POST("/:id/void", h.voidVoucher)
		vouchers.POST("/:id/recalculate-status", h.recalculateStatus)
		vouchers.DELETE("/:id", h.deleteVoucher)
	}
}

// createVoucher godoc
// @Summary Create a new voucher
// @Description Creates a voucher with its debit/credit lines
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.GetVoucherResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unbalanced lines"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Duplicate voucher number"
// @Failure 500 {object} ErrorResponse "Failed to create voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, lines, err := h.voucherService.CreateVoucher(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A voucher with this number already exists"})
		} else {
			logger.Error("Failed to create voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create voucher"})
		}
		return
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToGetVoucherResponse(voucher, lines))
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Description Retrieves a voucher header with its lines
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.GetVoucherResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve voucher"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, lines, err := h.voucherService.GetVoucherByID(c.Request.Context(), userID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		} else {
			logger.Error("Failed to get voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGetVoucherResponse(voucher, lines))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves a paginated list of the user's vouchers
// @Tags vouchers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token from a previous page"
// @Param fromDate query string false "Earliest voucher date (YYYY-MM-DD)"
// @Param toDate query string false "Latest voucher date (YYYY-MM-DD)"
// @Param status query string false "Filter by voucher status"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list vouchers"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list vouchers"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateVoucher godoc
// @Summary Update a voucher
// @Description Replaces a voucher's header fields and lines. Fully paid vouchers reject edits.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "Fields to update"
// @Success 200 {object} dto.GetVoucherResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Voucher is fully paid or void"
// @Failure 500 {object} ErrorResponse "Failed to update voucher"
// @Security BearerAuth
// @Router /vouchers/{id} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	voucher, lines, err := h.voucherService.UpdateVoucher(c.Request.Context(), userID, voucherID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGetVoucherResponse(voucher, lines))
}

// voidVoucher godoc
// @Summary Void a voucher
// @Description Marks a voucher VOID, excluding it from reports and balances
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Voucher already void or has paid allocations"
// @Failure 500 {object} ErrorResponse "Failed to void voucher"
// @Security BearerAuth
// @Router /vouchers/{id}/void [post]
func (h *voucherHandler) voidVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	_, err := h.voucherService.VoidVoucher(c.Request.Context(), userID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to void voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to void voucher"})
		}
		return
	}

	voucher, lines, err := h.voucherService.GetVoucherByID(c.Request.Context(), userID, voucherID)
	if err != nil {
		logger.Error("Failed to reload voided voucher", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to void voucher"})
		return
	}

	logger.Info("Voucher voided", slog.String("voucher_id", voucherID))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher, lines))
}

// recalculateStatus godoc
// @Summary Recalculate a voucher's payment status
// @Description Recomputes the voucher's status from its paid allocations
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 500 {object} ErrorResponse "Failed to recalculate status"
// @Security BearerAuth
// @Router /vouchers/{id}/recalculate-status [post]
func (h *voucherHandler) recalculateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	status, err := h.voucherService.UpdateVoucherStatus(c.Request.Context(), userID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		} else {
			logger.Error("Failed to recalculate voucher status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to recalculate status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"voucherID": voucherID, "status": string(status)})
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes a voucher that has no payment allocations
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Voucher has payment allocations"
// @Failure 500 {object} ErrorResponse "Failed to delete voucher"
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), userID, voucherID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Voucher has payment allocations"})
		} else {
			logger.Error("Failed to delete voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete voucher"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
