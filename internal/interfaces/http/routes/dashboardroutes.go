package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/dashboard"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *dashboardhandlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("", config.DashboardHandler.Get)
	}
}
