package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
)

// ParseSIDParam parses and validates a Stripe-style prefixed ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "product_id").
// prefix is the expected SID prefix (e.g., id.PrefixProduct).
// entityName is used in error messages (e.g., "product", "entitlement").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// CurrentUserID extracts the authenticated user ID set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	uid, ok := v.(uint)
	if !ok {
		return 0, errors.NewInternalError("invalid user ID in context")
	}
	return uid, nil
}
