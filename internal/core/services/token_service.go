package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/platform/config"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/google/uuid"
)

// tokenService implements the TokenSvcFacade for signing and verifying JWT pairs.
type tokenService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// TokenServiceOption is a functional option for configuring the token service
type TokenServiceOption func(*tokenService)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, options ...TokenServiceOption) portssvc.TokenSvcFacade {
	svc := &tokenService{cfg: cfg, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *tokenService) GenerateTokens(ctx context.Context, payload domain.TokenPayload) (*domain.TokenPair, error) {
	now := s.now()
	claims := utils.AuthClaims{
		UserID:   payload.UserID,
		Email:    payload.Email,
		Role:     string(payload.Role),
		UniqueID: fmt.Sprintf("default-%d-%s", now.UnixMilli(), uuid.NewString()),
	}

	claims.TokenType = string(domain.AccessToken)
	access, accessExp, err := utils.GenerateJWT(claims, s.cfg.JWTSecret, s.cfg.JWTIssuer, now, s.cfg.AccessTokenExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", payload.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	claims.TokenType = string(domain.RefreshToken)
	refresh, refreshExp, err := utils.GenerateJWT(claims, s.cfg.JWTSecret, s.cfg.JWTIssuer, now, s.cfg.RefreshTokenExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign refresh token", slog.String("user_id", payload.UserID))
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:           access,
		RefreshToken:          refresh,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (s *tokenService) DecodeToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.now)
	if err != nil {
		s.LogDebug(ctx, "Token rejected", slog.String("reason", err.Error()))
		return nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidToken, apperrors.ErrUnauthorized)
	}
	tokenType := domain.TokenType(claims.TokenType)
	if tokenType != domain.AccessToken && tokenType != domain.RefreshToken {
		s.LogDebug(ctx, "Token rejected", slog.String("reason", "unknown token type"))
		return nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidToken, apperrors.ErrUnauthorized)
	}

	decoded := &domain.TokenClaims{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Role:     domain.Role(claims.Role),
		UniqueID: claims.UniqueID,
		Type:     tokenType,
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}
	return decoded, nil
}
