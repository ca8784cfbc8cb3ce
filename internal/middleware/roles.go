package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRoles responds 403 unless the authenticated user holds one of roles.
// It must run after AuthGuard.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !slices.Contains(roles, user.Role) {
			GetLoggerFromContext(c).Warn("Role not permitted",
				slog.String("role", string(user.Role)),
				slog.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}
