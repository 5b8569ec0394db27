// Package service exposes the repair ticket endpoints.
package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/service/usecases"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ServiceHandler struct {
	createUC     *usecases.CreateServiceUseCase
	updateUC     *usecases.UpdateServiceUseCase
	deleteUC     *usecases.DeleteServiceUseCase
	getUC        *usecases.GetServiceUseCase
	listUC       *usecases.ListServicesUseCase
	addPartUC    *usecases.AddPartUseCase
	removePartUC *usecases.RemovePartUseCase
	logger       logger.Interface
}

func NewServiceHandler(
	createUC *usecases.CreateServiceUseCase,
	updateUC *usecases.UpdateServiceUseCase,
	deleteUC *usecases.DeleteServiceUseCase,
	getUC *usecases.GetServiceUseCase,
	listUC *usecases.ListServicesUseCase,
	addPartUC *usecases.AddPartUseCase,
	removePartUC *usecases.RemovePartUseCase,
) *ServiceHandler {
	return &ServiceHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		getUC:        getUC,
		listUC:       listUC,
		addPartUC:    addPartUC,
		removePartUC: removePartUC,
		logger:       logger.NewLogger(),
	}
}

// Create handles POST /services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service ticket created successfully")
}

// Get handles GET /services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetServiceQuery{
		ServiceID: serviceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /services. Technicians only see their own assignments.
func (h *ServiceHandler) List(c *gin.Context) {
	req := parseListServicesRequest(c)
	query := req.ToQuery()

	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	if role.IsTechnician() {
		technicianID := c.GetUint(constants.ContextKeyUserID)
		query.TechnicianID = &technicianID
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Services, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(serviceID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service ticket updated successfully", result)
}

// AddPart handles POST /services/:id/parts
func (h *ServiceHandler) AddPart(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addPartUC.Execute(c.Request.Context(), usecases.AddPartCommand{
		ServiceID: serviceID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part added to service ticket", result)
}

// RemovePart handles DELETE /services/:id/parts/:partId
func (h *ServiceHandler) RemovePart(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	partIDStr := c.Param("partId")
	partID, err := strconv.ParseUint(partIDStr, 10, 32)
	if err != nil || partID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid part ID"))
		return
	}

	result, err := h.removePartUC.Execute(c.Request.Context(), usecases.RemovePartCommand{
		ServiceID: serviceID,
		PartID:    uint(partID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part removed from service ticket", result)
}

// Delete handles DELETE /services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteServiceCommand{
		ServiceID: serviceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service ticket deleted successfully", nil)
}

func parseServiceID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid service ID")
	}
	return uint(id), nil
}
