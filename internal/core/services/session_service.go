package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
)

// sessionService keeps the per-user set of refresh tokens that may still be exchanged.
type sessionService struct {
	BaseService
	store       portsrepo.UserSessionStore
	tokens      portssvc.TokenSvcFacade
	maxSessions int
}

// NewSessionService creates a session service capping each user at maxSessions refresh tokens.
func NewSessionService(store portsrepo.UserSessionStore, tokens portssvc.TokenSvcFacade, maxSessions int) portssvc.SessionSvcFacade {
	return &sessionService{store: store, tokens: tokens, maxSessions: maxSessions}
}

func (s *sessionService) Push(ctx context.Context, userID, refreshToken string) error {
	if err := s.store.PushRefreshToken(ctx, userID, refreshToken, s.maxSessions); err != nil {
		s.logUnexpected(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *sessionService) Remove(ctx context.Context, userID, refreshToken string) error {
	if err := s.store.RemoveRefreshToken(ctx, userID, refreshToken); err != nil {
		s.logUnexpected(ctx, err, "Failed to remove refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *sessionService) Rotate(ctx context.Context, userID, oldToken, newToken string) error {
	if err := s.store.ReplaceRefreshToken(ctx, userID, oldToken, newToken, s.maxSessions); err != nil {
		s.logUnexpected(ctx, err, "Failed to rotate refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *sessionService) ValidateUniqueID(ctx context.Context, user *domain.User, uniqueID string) (bool, error) {
	found := false
	var stale []string
	for _, stored := range user.RefreshTokens {
		claims, err := s.tokens.DecodeToken(ctx, stored)
		if err != nil {
			stale = append(stale, stored)
			continue
		}
		if uniqueID != "" && claims.UniqueID == uniqueID {
			found = true
		}
	}

	if len(stale) > 0 {
		if err := s.store.PruneRefreshTokens(ctx, user.UserID, stale); err != nil {
			s.LogError(ctx, err, "Failed to prune expired refresh tokens",
				slog.String("user_id", user.UserID),
				slog.Int("stale", len(stale)))
		} else {
			s.LogDebug(ctx, "Pruned expired refresh tokens", slog.String("user_id", user.UserID), slog.Int("count", len(stale)))
		}
	}
	return found, nil
}
