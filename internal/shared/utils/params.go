package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "ticket_id").
// entityName is used in error messages (e.g., "ticket", "review").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// GetUserID extracts the authenticated user ID from the Gin context.
// Returns an unauthorized error when the auth middleware did not run.
func GetUserID(c *gin.Context) (uint, error) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := val.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	return userID, nil
}
