package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

// authService drives the session lifecycle: login or registration mints a pair, refresh rotates
// it and logout revokes it. Each refresh token stays usable only while it is in the user's set.
type authService struct {
	BaseService
	users    portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
	sessions portssvc.SessionSvcFacade
	google   portssvc.GoogleOAuthSvcFacade
	now      func() time.Time
}

// AuthServiceOption is a functional option for configuring the auth service
type AuthServiceOption func(*authService)

// WithGoogleOAuth enables Google sign-in.
func WithGoogleOAuth(google portssvc.GoogleOAuthSvcFacade) AuthServiceOption {
	return func(s *authService) {
		s.google = google
	}
}

// WithAuthClock replaces the clock used for activity timestamps.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the auth orchestrator.
func NewAuthService(users portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, sessions portssvc.SessionSvcFacade, options ...AuthServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{users: users, tokens: tokens, sessions: sessions, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func errInvalidCredentials() error {
	return apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidCredentials, apperrors.ErrUnauthorized)
}

func errInvalidToken() error {
	return apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidToken, apperrors.ErrUnauthorized)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error) {
	email := normalizeEmail(req.Email)
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login failed: unknown email")
			return nil, errInvalidCredentials()
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.ValidatePassword(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, errInvalidCredentials()
	}
	return s.startSession(ctx, user)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.AuthResult, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s is already registered: %w", email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email availability")
		return nil, err
	}

	role := domain.RoleStudent
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := s.newUser(email, strings.TrimSpace(req.DisplayName), role, hash)
	user.CountryCode = req.CountryCode
	user.NativeLanguageID = req.NativeLanguageID
	user.UILanguageID = req.UILanguageID

	if err := s.users.SaveUser(ctx, user); err != nil {
		s.logUnexpected(ctx, err, "Failed to create user")
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return s.startSession(ctx, &user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.DecodeToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	user, err := s.lookupTokenOwner(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if !user.HasRefreshToken(refreshToken) {
		s.LogInfo(ctx, "Logout with a token that is not active", slog.String("user_id", user.UserID))
		return errInvalidToken()
	}
	if err := s.sessions.Remove(ctx, user.UserID, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errInvalidToken()
		}
		return err
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.DecodeToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != domain.RefreshToken {
		s.LogInfo(ctx, "Refresh attempted with an access token", slog.String("user_id", claims.UserID))
		return nil, errInvalidToken()
	}
	user, err := s.lookupTokenOwner(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasRefreshToken(refreshToken) {
		s.LogWarn(ctx, "Refresh token is not active", slog.String("user_id", user.UserID))
		return nil, errInvalidToken()
	}

	pair, err := s.tokens.GenerateTokens(ctx, payloadOf(user))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Rotate(ctx, user.UserID, refreshToken, pair.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Refresh token was revoked concurrently", slog.String("user_id", user.UserID))
			return nil, errInvalidToken()
		}
		return nil, err
	}
	return pair, nil
}

func (s *authService) Authenticate(ctx context.Context, token string, refreshEndpoint bool) (*domain.TokenClaims, *domain.User, error) {
	claims, err := s.tokens.DecodeToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	want := domain.AccessToken
	if refreshEndpoint {
		want = domain.RefreshToken
	}
	if claims.Type != want {
		s.LogDebug(ctx, "Token type not accepted here", slog.String("type", string(claims.Type)))
		return nil, nil, errInvalidToken()
	}

	user, err := s.lookupTokenOwner(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}

	if !refreshEndpoint {
		ok, err := s.sessions.ValidateUniqueID(ctx, user, claims.UniqueID)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			s.LogDebug(ctx, "Access token belongs to a revoked session", slog.String("user_id", user.UserID))
			return nil, nil, errInvalidToken()
		}
	}

	now := s.now().UTC()
	if err := s.users.TouchLastActivity(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record user activity", slog.String("user_id", user.UserID))
	} else {
		user.LastActiveAt = &now
	}
	return claims, user, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	if s.google == nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Google sign-in is not enabled", apperrors.ErrUnauthorized)
	}
	identity, err := s.google.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, errInvalidToken()
	}
	if identity.Email == "" || !identity.EmailVerified {
		s.LogInfo(ctx, "Google account has no verified email", slog.String("subject", identity.Subject))
		return nil, errInvalidCredentials()
	}

	email := normalizeEmail(identity.Email)
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.registerGoogleUser(ctx, email, identity)
	}
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to resolve Google user")
		return nil, err
	}
	return s.startSession(ctx, user)
}

func (s *authService) LoginWithGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error) {
	if s.google == nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Google sign-in is not enabled", apperrors.ErrUnauthorized)
	}
	idToken, err := s.google.ExchangeCodeForIDToken(ctx, code)
	if err != nil {
		s.LogInfo(ctx, "Google code exchange failed", slog.String("error", err.Error()))
		return nil, errInvalidCredentials()
	}
	return s.LoginWithGoogle(ctx, idToken)
}

// registerGoogleUser creates a password-less account. The random hash can never be matched.
func (s *authService) registerGoogleUser(ctx context.Context, email string, identity *domain.GoogleIdentity) (*domain.User, error) {
	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(secret)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	user := s.newUser(email, name, domain.RoleStudent, hash)
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered via Google", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) newUser(email, displayName string, role domain.Role, passwordHash string) domain.User {
	now := s.now().UTC()
	return domain.User{
		UserID:        utils.NewObjectID(),
		Email:         email,
		PasswordHash:  passwordHash,
		DisplayName:   displayName,
		Role:          role,
		RefreshTokens: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// startSession mints a pair for user and records its refresh token.
func (s *authService) startSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	pair, err := s.tokens.GenerateTokens(ctx, payloadOf(user))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Push(ctx, user.UserID, pair.RefreshToken); err != nil {
		return nil, err
	}
	user.RefreshTokens = append(user.RefreshTokens, pair.RefreshToken)
	return &domain.AuthResult{User: user, Tokens: *pair}, nil
}

// lookupTokenOwner maps a missing user to an invalid token.
func (s *authService) lookupTokenOwner(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Token references an unknown user", slog.String("user_id", userID))
			return nil, errInvalidToken()
		}
		s.LogError(ctx, err, "Failed to load token owner", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func payloadOf(user *domain.User) domain.TokenPayload {
	return domain.TokenPayload{UserID: user.UserID, Email: user.Email, Role: user.Role}
}
