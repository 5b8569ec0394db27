package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/customer"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type CustomerRouteConfig struct {
	CustomerHandler *customerhandlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.GET("", config.CustomerHandler.List)
		customers.GET("/:id", config.CustomerHandler.Get)

		customers.POST("",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleSales),
			config.CustomerHandler.Create)
		customers.PUT("/:id",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleSales),
			config.CustomerHandler.Update)
		customers.DELETE("/:id",
			authorization.RequireAdministrator(),
			config.CustomerHandler.Delete)
	}
}
