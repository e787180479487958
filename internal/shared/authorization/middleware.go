package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireAdmin aborts with 403 unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(r UserRole) bool { return r.IsAdmin() }, "admin access required")
}

// RequireSeller aborts with 403 unless the authenticated user can sell.
func RequireSeller() gin.HandlerFunc {
	return requireRole(func(r UserRole) bool { return r.IsSeller() }, "seller access required")
}

func requireRole(check func(UserRole) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !check(role) {
			c.JSON(403, gin.H{
				"error": message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnedResource is implemented by aggregates that carry an owner.
type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
