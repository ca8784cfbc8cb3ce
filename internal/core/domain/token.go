package domain

import "time"

// TokenType distinguishes the two halves of a token pair.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenPayload is the identity embedded in both tokens of a pair.
type TokenPayload struct {
	UserID string
	Email  string
	Role   Role
}

// TokenClaims are the verified contents of a decoded token.
// UniqueID is shared by the access and refresh token minted together.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      Role
	UniqueID  string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is the result of a login, registration or refresh.
type TokenPair struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
}

// AuthResult bundles the authenticated user with a freshly minted pair.
type AuthResult struct {
	User   *User
	Tokens TokenPair
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
