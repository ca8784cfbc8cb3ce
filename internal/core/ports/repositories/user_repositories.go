package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail matches email case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a page of users and the total match count.
	FindUsers(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int64, error)

	CountUsers(ctx context.Context) (int64, error)

	// CountActiveUsersSince counts users whose last activity is at or after since.
	CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error)

	// CountRegistrationsByDay returns the number of users created per day since the given time.
	CountRegistrationsByDay(ctx context.Context, since time.Time) ([]domain.DailyCount, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email fails with apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates profile fields, role and password hash.
	UpdateUser(ctx context.Context, user domain.User) error

	DeleteUser(ctx context.Context, userID string) error
}

// UserSessionStore maintains the bounded set of active refresh tokens of a user.
// Every method is a single row-atomic statement.
type UserSessionStore interface {
	// PushRefreshToken appends token and evicts the oldest entries beyond maxTokens.
	PushRefreshToken(ctx context.Context, userID, token string, maxTokens int) error

	// RemoveRefreshToken fails with apperrors.ErrNotFound when token is not in the set.
	RemoveRefreshToken(ctx context.Context, userID, token string) error

	// ReplaceRefreshToken swaps oldToken for newToken. It fails with apperrors.ErrNotFound when
	// oldToken is no longer in the set.
	ReplaceRefreshToken(ctx context.Context, userID, oldToken, newToken string, maxTokens int) error

	// PruneRefreshTokens drops every listed token from the set.
	PruneRefreshTokens(ctx context.Context, userID string, tokens []string) error

	TouchLastActivity(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserSessionStore
}
