package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgInternalError = "Internal server error"

// respondWithData wraps a successful payload as {"data": payload}.
func respondWithData(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"data": payload})
}

// respondWithError maps service errors onto HTTP status codes.
// 5xx responses never leak the underlying error.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, message := http.StatusInternalServerError, msgInternalError
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, clientMessage(err, apperrors.ErrValidation)
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, apperrors.MsgInvalidToken
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusForbidden, "You do not have permission to perform this action"
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, message = http.StatusConflict, clientMessage(err, apperrors.ErrDuplicate)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Failed to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": message})
}

// respondBindError answers 400 for a body or query that failed binding.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// clientMessage returns the context an error chain adds on top of its sentinel, or the
// sentinel's own text when there is none.
func clientMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()+": "); i >= 0 {
		return msg[i+len(sentinel.Error())+2:]
	}
	if before, ok := strings.CutSuffix(msg, ": "+sentinel.Error()); ok {
		return before
	}
	return msg
}

// currentUserID returns the authenticated caller or answers 401.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
