// Package customer exposes the customer CRUD endpoints.
package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/customer/usecases"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type CustomerHandler struct {
	createUC *usecases.CreateCustomerUseCase
	updateUC *usecases.UpdateCustomerUseCase
	deleteUC *usecases.DeleteCustomerUseCase
	getUC    *usecases.GetCustomerUseCase
	listUC   *usecases.ListCustomersUseCase
	logger   logger.Interface
}

func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	deleteUC *usecases.DeleteCustomerUseCase,
	getUC *usecases.GetCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	req := parseListCustomersRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(customerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", result)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{
		CustomerID: customerID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer deleted successfully", nil)
}

func parseCustomerID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid customer ID")
	}
	return uint(id), nil
}
