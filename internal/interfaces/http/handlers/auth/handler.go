// Package auth exposes login and current-account endpoints.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/user/usecases"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type AuthHandler struct {
	loginUC          *usecases.LoginUseCase
	getUserUC        *usecases.GetUserUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	getUserUC *usecases.GetUserUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		getUserUC:        getUserUC,
		changePasswordUC: changePasswordUC,
		logger:           logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		User:        result.User,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePassword handles PUT /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
