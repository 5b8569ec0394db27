// Package purchase exposes the supplier order endpoints.
package purchase

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/purchase/usecases"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type PurchaseHandler struct {
	createUC  *usecases.CreatePurchaseUseCase
	deleteUC  *usecases.DeletePurchaseUseCase
	getUC     *usecases.GetPurchaseUseCase
	listUC    *usecases.ListPurchasesUseCase
	receiveUC *usecases.ReceivePurchaseUseCase
	cancelUC  *usecases.CancelPurchaseUseCase
	logger    logger.Interface
}

func NewPurchaseHandler(
	createUC *usecases.CreatePurchaseUseCase,
	deleteUC *usecases.DeletePurchaseUseCase,
	getUC *usecases.GetPurchaseUseCase,
	listUC *usecases.ListPurchasesUseCase,
	receiveUC *usecases.ReceivePurchaseUseCase,
	cancelUC *usecases.CancelPurchaseUseCase,
) *PurchaseHandler {
	return &PurchaseHandler{
		createUC:  createUC,
		deleteUC:  deleteUC,
		getUC:     getUC,
		listUC:    listUC,
		receiveUC: receiveUC,
		cancelUC:  cancelUC,
		logger:    logger.NewLogger(),
	}
}

// Create handles POST /purchases. The ordering user is the authenticated user.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create purchase", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Purchase order created successfully")
}

// Get handles GET /purchases/:id
func (h *PurchaseHandler) Get(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPurchaseQuery{
		PurchaseID: purchaseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	req := parseListPurchasesRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Purchases, result.Total, result.Page, result.PageSize)
}

// Receive handles POST /purchases/:id/receive
func (h *PurchaseHandler) Receive(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.receiveUC.Execute(c.Request.Context(), usecases.ReceivePurchaseCommand{
		PurchaseID: purchaseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Purchase order received, stock updated", result)
}

// Cancel handles POST /purchases/:id/cancel
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelPurchaseCommand{
		PurchaseID: purchaseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Purchase order cancelled", result)
}

// Delete handles DELETE /purchases/:id
func (h *PurchaseHandler) Delete(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePurchaseCommand{
		PurchaseID: purchaseID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Purchase order deleted successfully", nil)
}

func parsePurchaseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid purchase ID")
	}
	return uint(id), nil
}
