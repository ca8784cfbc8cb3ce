package middleware

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey     = contextKey("userID")
	userKey       = contextKey("user")
	claimsKey     = contextKey("claims")
	rawTokenKey   = contextKey("token")
	authMethodKey = contextKey("authMethod")
	authMethodJWT = "jwt"
)

// withAuthentication stores everything the guard resolved in the request context.
func withAuthentication(ctx context.Context, user *domain.User, claims *domain.TokenClaims, token string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, user.UserID)
	ctx = context.WithValue(ctx, userKey, user)
	ctx = context.WithValue(ctx, claimsKey, claims)
	ctx = context.WithValue(ctx, rawTokenKey, token)
	return context.WithValue(ctx, authMethodKey, authMethodJWT)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserFromContext returns the user loaded by the access guard.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// GetClaimsFromContext returns the verified claims of the bearer token.
func GetClaimsFromContext(c *gin.Context) (*domain.TokenClaims, bool) {
	claims, ok := c.Request.Context().Value(claimsKey).(*domain.TokenClaims)
	return claims, ok && claims != nil
}

// GetTokenFromContext returns the raw bearer token of the request.
func GetTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(rawTokenKey).(string)
	return token, ok && token != ""
}
