package routes

import (
	"github.com/gin-gonic/gin"

	servicehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/service"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type ServiceRouteConfig struct {
	ServiceHandler *servicehandlers.ServiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupServiceRoutes(engine *gin.Engine, config *ServiceRouteConfig) {
	services := engine.Group("/services")
	services.Use(config.AuthMiddleware.RequireAuth())
	{
		services.GET("", config.ServiceHandler.List)

		services.POST("",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleTechnician),
			config.ServiceHandler.Create)
		services.POST("/:id/parts",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleTechnician),
			config.ServiceHandler.AddPart)
		services.DELETE("/:id/parts/:partId",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleTechnician),
			config.ServiceHandler.RemovePart)

		services.GET("/:id", config.ServiceHandler.Get)
		services.PUT("/:id",
			authorization.RequireRoles(authorization.RoleAdministrator, authorization.RoleTechnician),
			config.ServiceHandler.Update)
		services.DELETE("/:id",
			authorization.RequireAdministrator(),
			config.ServiceHandler.Delete)
	}
}
