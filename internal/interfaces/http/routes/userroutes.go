package routes

import (
	"github.com/gin-gonic/gin"

	"resolveit/internal/interfaces/http/handlers"
	"resolveit/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user profile routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user profile routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", cfg.UserHandler.GetProfile)
		users.PATCH("/me", cfg.UserHandler.UpdateProfile)
	}
}
