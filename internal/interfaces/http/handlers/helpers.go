package handlers

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// requestInfo captures the caller context attached to audit entries.
func requestInfo(c *gin.Context) auditapp.RequestInfo {
	return auditapp.RequestInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// currentRole reads the role set by the auth middleware. Empty for anonymous
// requests.
func currentRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}

// currentUserID reads the user ID set by the auth middleware, zero when
// anonymous.
func currentUserID(c *gin.Context) uint {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	uid, _ := v.(uint)
	return uid
}
