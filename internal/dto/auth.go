package dto

import (
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	DisplayName      string `json:"displayName" binding:"required"`
	Role             string `json:"role" binding:"omitempty,oneof=MEMBER STUDENT"`
	CountryCode      string `json:"countryCode"`
	NativeLanguageID string `json:"nativeLanguageId"`
	UILanguageID     string `json:"uiLanguageId"`
}

// RefreshTokenRequest carries a refresh token in the body.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ExchangeCodeRequest carries a Google authorization code for the server-side code flow.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse is returned by the refresh endpoint.
type TokenResponse struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// AuthResponse is the user profile merged with a freshly issued token pair.
type AuthResponse struct {
	UserResponse
	TokenResponse
}

// VerifyResponse confirms that the bearer token is valid.
type VerifyResponse struct {
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func ToTokenResponse(p domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:           p.AccessToken,
		RefreshToken:          p.RefreshToken,
		AccessTokenExpiresAt:  p.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: p.RefreshTokenExpiresAt,
	}
}

func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		UserResponse:  ToUserResponse(r.User),
		TokenResponse: ToTokenResponse(r.Tokens),
	}
}
