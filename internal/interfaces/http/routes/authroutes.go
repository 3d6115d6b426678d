package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication and profile routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication and user profile routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.RateLimit != nil {
			auth.POST("/register", cfg.RateLimit, cfg.AuthHandler.Register)
			auth.POST("/login", cfg.RateLimit, cfg.AuthHandler.Login)
		} else {
			auth.POST("/register", cfg.AuthHandler.Register)
			auth.POST("/login", cfg.AuthHandler.Login)
		}
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
	}

	users := engine.Group("/users")
	{
		users.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
		// Accepts a numeric ID or a username.
		users.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.GetProfile)
	}
}
