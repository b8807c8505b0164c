package routes

import (
	"github.com/gin-gonic/gin"

	"resolveit/internal/interfaces/http/handlers"
	"resolveit/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter // may be nil when Redis is not configured
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.RateLimiter != nil {
			auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
			auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		} else {
			auth.POST("/register", cfg.AuthHandler.Register)
			auth.POST("/login", cfg.AuthHandler.Login)
		}

		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
	}
}
