package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/domain/permission"
	reviewhandlers "revu/internal/interfaces/http/handlers/review"
	"revu/internal/interfaces/http/middleware"
)

type ReviewRouteConfig struct {
	ReviewHandler        *reviewhandlers.ReviewHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReviewRoutes(engine *gin.Engine, config *ReviewRouteConfig) {
	reviews := engine.Group("/reviews")
	{
		reviews.GET("", config.ReviewHandler.ListReviews)

		reviews.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.ReviewHandler.CreateReview)
		reviews.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.ReviewHandler.UpdateReview)
		reviews.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.ReviewHandler.DeleteReview)
	}

	engine.POST("/tickets/:id/review-requests",
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceReviewRequest, permission.ActionCreate),
		config.ReviewHandler.RequestReview)
}
