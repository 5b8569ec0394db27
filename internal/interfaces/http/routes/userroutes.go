package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/user"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	users.Use(authorization.RequireAdministrator())
	{
		// Specific paths before parameterized ones.
		users.GET("/technicians", config.UserHandler.ListTechnicians)

		users.GET("", config.UserHandler.List)
		users.POST("", config.UserHandler.Create)
		users.GET("/:id", config.UserHandler.Get)
		users.PUT("/:id", config.UserHandler.Update)
		users.DELETE("/:id", config.UserHandler.Delete)
	}
}
