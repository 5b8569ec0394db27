// Package user exposes the staff account management endpoints.
package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/user/usecases"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type UserHandler struct {
	createUC          *usecases.CreateUserUseCase
	updateUC          *usecases.UpdateUserUseCase
	deleteUC          *usecases.DeleteUserUseCase
	getUC             *usecases.GetUserUseCase
	listUC            *usecases.ListUsersUseCase
	listTechniciansUC *usecases.ListTechniciansUseCase
	logger            logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	listTechniciansUC *usecases.ListTechniciansUseCase,
) *UserHandler {
	return &UserHandler{
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		getUC:             getUC,
		listUC:            listUC,
		listTechniciansUC: listTechniciansUC,
		logger:            logger.NewLogger(),
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	req := parseListUsersRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// ListTechnicians handles GET /users/technicians, the assignment dropdown.
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func parseUserID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid user ID")
	}
	return uint(id), nil
}
