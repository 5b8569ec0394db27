// Package dashboard exposes the workshop overview endpoint.
package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/dashboard/usecases"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC *usecases.GetDashboardUseCase
}

func NewDashboardHandler(getDashboardUC *usecases.GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
	}
}

// Get handles GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
		Role:   authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
