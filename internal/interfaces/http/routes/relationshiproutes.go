package routes

import (
	"github.com/gin-gonic/gin"

	relationshiphandlers "revu/internal/interfaces/http/handlers/relationship"
	"revu/internal/interfaces/http/middleware"
)

type RelationshipRouteConfig struct {
	RelationshipHandler *relationshiphandlers.RelationshipHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRelationshipRoutes(engine *gin.Engine, config *RelationshipRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me/relationships", config.RelationshipHandler.ListRelationships)

		users.POST("/:id/follow", config.RelationshipHandler.FollowUser)
		users.DELETE("/:id/follow", config.RelationshipHandler.UnfollowUser)
		users.POST("/:id/block", config.RelationshipHandler.BlockUser)
		users.DELETE("/:id/block", config.RelationshipHandler.UnblockUser)
	}
}
