package routes

import (
	"github.com/gin-gonic/gin"

	producthandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/product"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type ProductRouteConfig struct {
	ProductHandler *producthandlers.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProductRoutes(engine *gin.Engine, config *ProductRouteConfig) {
	products := engine.Group("/products")
	products.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones.
		products.GET("/low-stock", config.ProductHandler.ListLowStock)

		products.GET("", config.ProductHandler.List)
		products.GET("/:id", config.ProductHandler.Get)

		products.POST("",
			authorization.RequireAdministrator(),
			config.ProductHandler.Create)
		products.PUT("/:id",
			authorization.RequireAdministrator(),
			config.ProductHandler.Update)
		products.DELETE("/:id",
			authorization.RequireAdministrator(),
			config.ProductHandler.Delete)
	}
}
