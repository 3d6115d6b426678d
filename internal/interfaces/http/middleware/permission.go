package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/domain/permission"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type PermissionMiddleware struct {
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer permission.Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.authorizer.Can(c.Request.Context(), userID.(uint), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
