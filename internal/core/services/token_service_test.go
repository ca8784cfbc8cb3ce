package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTokenService(testConfig(), services.WithClock(func() time.Time { return now }))

	pair, err := svc.GenerateTokens(ctx, domain.TokenPayload{UserID: testUserID, Email: "a@b.c", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), pair.AccessTokenExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), pair.RefreshTokenExpiresAt)

	access, err := svc.DecodeToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	refresh, err := svc.DecodeToken(ctx, pair.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, domain.AccessToken, access.Type)
	assert.Equal(t, domain.RefreshToken, refresh.Type)
	assert.Equal(t, access.UniqueID, refresh.UniqueID)
	assert.True(t, strings.HasPrefix(access.UniqueID, "default-"))
	assert.Equal(t, domain.RoleAdmin, access.Role)

	now = now.Add(16 * time.Minute)
	_, err = svc.DecodeToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.DecodeToken(ctx, pair.RefreshToken)
	assert.NoError(t, err)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	other := *cfg
	other.JWTSecret = "another-secret-key-entirely-different"

	pair, err := services.NewTokenService(&other).GenerateTokens(ctx, domain.TokenPayload{UserID: testUserID})
	require.NoError(t, err)

	_, err = services.NewTokenService(cfg).DecodeToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = services.NewTokenService(cfg).DecodeToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSessionService_PrunesExpiredTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tokens := services.NewTokenService(testConfig(), services.WithClock(func() time.Time { return now }))
	repo := new(MockUserRepository)
	sessions := services.NewSessionService(repo, tokens, 3)

	stale, err := tokens.GenerateTokens(ctx, domain.TokenPayload{UserID: testUserID})
	require.NoError(t, err)
	now = now.Add(48 * time.Hour)
	live, err := tokens.GenerateTokens(ctx, domain.TokenPayload{UserID: testUserID})
	require.NoError(t, err)
	liveClaims, err := tokens.DecodeToken(ctx, live.AccessToken)
	require.NoError(t, err)

	user := &domain.User{UserID: testUserID, RefreshTokens: []string{stale.RefreshToken, live.RefreshToken}}
	repo.On("PruneRefreshTokens", mock.Anything, testUserID, []string{stale.RefreshToken}).Return(nil).Once()

	ok, err := sessions.ValidateUniqueID(ctx, user, liveClaims.UniqueID)

	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertExpectations(t)
}

func TestSessionService_UnknownUniqueID(t *testing.T) {
	ctx := context.Background()
	tokens := services.NewTokenService(testConfig())
	repo := new(MockUserRepository)
	sessions := services.NewSessionService(repo, tokens, 3)

	pair, err := tokens.GenerateTokens(ctx, domain.TokenPayload{UserID: testUserID})
	require.NoError(t, err)

	ok, err := sessions.ValidateUniqueID(ctx, &domain.User{UserID: testUserID, RefreshTokens: []string{pair.RefreshToken}}, "default-0-missing")
	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "PruneRefreshTokens", mock.Anything, mock.Anything, mock.Anything)
}
