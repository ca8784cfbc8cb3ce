package services

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
)

// TokenSvcFacade mints and verifies signed token pairs.
type TokenSvcFacade interface {
	// GenerateTokens signs an access and a refresh token sharing one unique id.
	GenerateTokens(ctx context.Context, payload domain.TokenPayload) (*domain.TokenPair, error)

	// DecodeToken verifies signature, issuer and expiry. Every failure is apperrors.ErrUnauthorized.
	DecodeToken(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// SessionSvcFacade manages the set of refresh tokens a user may still present.
type SessionSvcFacade interface {
	Push(ctx context.Context, userID, refreshToken string) error
	Remove(ctx context.Context, userID, refreshToken string) error

	// Rotate swaps oldToken for newToken atomically. apperrors.ErrNotFound means oldToken was
	// already gone.
	Rotate(ctx context.Context, userID, oldToken, newToken string) error

	// ValidateUniqueID reports whether any stored refresh token of user carries uniqueID.
	// Stored tokens that no longer decode are pruned.
	ValidateUniqueID(ctx context.Context, user *domain.User, uniqueID string) (bool, error)
}

// GoogleOAuthSvcFacade verifies Google identities.
type GoogleOAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token against the configured client id.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error)

	// ExchangeCodeForIDToken runs the authorization-code exchange and returns the ID token.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
}

// AuthSvcFacade orchestrates login, registration, logout, refresh and request authentication.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// Authenticate resolves a bearer token to its claims and user. refreshEndpoint selects which
	// token type is acceptable.
	Authenticate(ctx context.Context, token string, refreshEndpoint bool) (*domain.TokenClaims, *domain.User, error)

	LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error)
	LoginWithGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error)
}
