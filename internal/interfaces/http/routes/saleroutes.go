package routes

import (
	"github.com/gin-gonic/gin"

	salehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/sale"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type SaleRouteConfig struct {
	SaleHandler    *salehandlers.SaleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSaleRoutes(engine *gin.Engine, config *SaleRouteConfig) {
	sales := engine.Group("/sales")
	sales.Use(config.AuthMiddleware.RequireAuth())
	sales.Use(authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleSales))
	{
		sales.GET("", config.SaleHandler.List)
		sales.POST("", config.SaleHandler.Create)
		sales.GET("/:id", config.SaleHandler.Get)
		sales.POST("/:id/pay", config.SaleHandler.MarkPaid)
		sales.POST("/:id/cancel", config.SaleHandler.MarkCancelled)
		sales.DELETE("/:id",
			authorization.RequireAdministrator(),
			config.SaleHandler.Delete)
	}
}
