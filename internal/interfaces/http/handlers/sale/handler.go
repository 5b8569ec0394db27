// Package sale exposes the invoice endpoints.
package sale

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/sale/usecases"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type SaleHandler struct {
	createUC        *usecases.CreateSaleUseCase
	deleteUC        *usecases.DeleteSaleUseCase
	getUC           *usecases.GetSaleUseCase
	listUC          *usecases.ListSalesUseCase
	markPaidUC      *usecases.MarkSalePaidUseCase
	markCancelledUC *usecases.MarkSaleCancelledUseCase
	logger          logger.Interface
}

func NewSaleHandler(
	createUC *usecases.CreateSaleUseCase,
	deleteUC *usecases.DeleteSaleUseCase,
	getUC *usecases.GetSaleUseCase,
	listUC *usecases.ListSalesUseCase,
	markPaidUC *usecases.MarkSalePaidUseCase,
	markCancelledUC *usecases.MarkSaleCancelledUseCase,
) *SaleHandler {
	return &SaleHandler{
		createUC:        createUC,
		deleteUC:        deleteUC,
		getUC:           getUC,
		listUC:          listUC,
		markPaidUC:      markPaidUC,
		markCancelledUC: markCancelledUC,
		logger:          logger.NewLogger(),
	}
}

// Create handles POST /sales. The seller is always the authenticated user.
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create sale", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	salesUserID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(salesUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sale recorded successfully")
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, err := parseSaleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetSaleQuery{
		SaleID: saleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /sales. Sales users only see their own invoices.
func (h *SaleHandler) List(c *gin.Context) {
	req := parseListSalesRequest(c)
	query := req.ToQuery()

	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	if role.IsSales() {
		query.SalesUserID = c.GetUint(constants.ContextKeyUserID)
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sales, result.Total, result.Page, result.PageSize)
}

// MarkPaid handles POST /sales/:id/pay
func (h *SaleHandler) MarkPaid(c *gin.Context) {
	saleID, err := parseSaleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markPaidUC.Execute(c.Request.Context(), usecases.MarkSalePaidCommand{
		SaleID: saleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sale marked as paid", result)
}

// MarkCancelled handles POST /sales/:id/cancel
func (h *SaleHandler) MarkCancelled(c *gin.Context) {
	saleID, err := parseSaleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markCancelledUC.Execute(c.Request.Context(), usecases.MarkSaleCancelledCommand{
		SaleID: saleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sale cancelled", result)
}

// Delete handles DELETE /sales/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, err := parseSaleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteSaleCommand{
		SaleID: saleID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sale deleted successfully", nil)
}

func parseSaleID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid sale ID")
	}
	return uint(id), nil
}
