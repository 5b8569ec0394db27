package routes

import (
	"github.com/gin-gonic/gin"

	purchasehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/purchase"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type PurchaseRouteConfig struct {
	PurchaseHandler *purchasehandlers.PurchaseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupPurchaseRoutes(engine *gin.Engine, config *PurchaseRouteConfig) {
	purchases := engine.Group("/purchases")
	purchases.Use(config.AuthMiddleware.RequireAuth())
	purchases.Use(authorization.RequireAdministrator())
	{
		purchases.GET("", config.PurchaseHandler.List)
		purchases.POST("", config.PurchaseHandler.Create)
		purchases.GET("/:id", config.PurchaseHandler.Get)
		purchases.POST("/:id/receive", config.PurchaseHandler.Receive)
		purchases.POST("/:id/cancel", config.PurchaseHandler.Cancel)
		purchases.DELETE("/:id", config.PurchaseHandler.Delete)
	}
}
