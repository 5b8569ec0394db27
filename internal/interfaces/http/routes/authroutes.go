// Package routes wires handlers and middleware onto the gin engine, one
// setup function per resource.
package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/auth"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
		auth.PUT("/password", config.AuthMiddleware.RequireAuth(), config.AuthHandler.ChangePassword)
	}
}
