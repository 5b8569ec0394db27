// Package product exposes the catalog and stock-level endpoints.
package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/product/usecases"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ProductHandler struct {
	createUC   *usecases.CreateProductUseCase
	updateUC   *usecases.UpdateProductUseCase
	deleteUC   *usecases.DeleteProductUseCase
	getUC      *usecases.GetProductUseCase
	listUC     *usecases.ListProductsUseCase
	lowStockUC *usecases.ListLowStockUseCase
	logger     logger.Interface
}

func NewProductHandler(
	createUC *usecases.CreateProductUseCase,
	updateUC *usecases.UpdateProductUseCase,
	deleteUC *usecases.DeleteProductUseCase,
	getUC *usecases.GetProductUseCase,
	listUC *usecases.ListProductsUseCase,
	lowStockUC *usecases.ListLowStockUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
		lowStockUC: lowStockUC,
		logger:     logger.NewLogger(),
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created successfully")
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProductQuery{
		ProductID: productID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	req := parseListProductsRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Products, result.Total, result.Page, result.PageSize)
}

// ListLowStock handles GET /products/low-stock
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.lowStockUC.Execute(c.Request.Context(), usecases.ListLowStockQuery{
		Limit: limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(productID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", result)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProductCommand{
		ProductID: productID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func parseProductID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid product ID")
	}
	return uint(id), nil
}
