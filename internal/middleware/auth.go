package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const refreshTokenPath = "/auth/refresh-token"

// AuthGuard creates a Gin middleware handler that resolves the bearer token to a user.
// The refresh endpoint accepts only refresh tokens, every other route only access tokens.
func AuthGuard(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c)
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c)
			return
		}
		tokenString := parts[1]

		isRefreshEndpoint := strings.Contains(c.Request.URL.Path, refreshTokenPath)
		claims, user, err := authSvc.Authenticate(c.Request.Context(), tokenString, isRefreshEndpoint)
		if err != nil {
			logger.Warn("Authentication failed", slog.String("error", err.Error()))
			abortUnauthorized(c)
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
		ctx := withAuthentication(c.Request.Context(), user, claims, tokenString)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(userIDKey), user.UserID)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgInvalidToken})
}
