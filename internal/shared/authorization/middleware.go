package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/shared/constants"
)

// RequireRoles aborts the request unless the authenticated user holds one of
// the given roles.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		userRole := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !allowed[userRole] {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient role for this resource",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdministrator is shorthand for the admin-only route groups.
func RequireAdministrator() gin.HandlerFunc {
	return RequireRoles(RoleAdministrator)
}
