package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_accounting_app/internal/platform/config"
	"github.com/stretchr/testify/mock"
)

// --- Mock DocumentRepository ---
type MockDocumentRepository[T any] struct {
	mock.Mock
}

func (m *MockDocumentRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockDocumentRepository[T]) FindAll(ctx context.Context, query domain.ListQuery) ([]T, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocumentRepository[T]) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository[T]) Create(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository[T]) Update(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// Mutate applies fn to a copy of the document configured for id and stores the copy back only
// when fn succeeds, mirroring the locked read-modify-write.
func (m *MockDocumentRepository[T]) Mutate(ctx context.Context, id string, fn func(doc *T) error) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	stored := args.Get(0).(*T)
	working := *stored
	if err := fn(&working); err != nil {
		return nil, err
	}
	*stored = working
	return stored, args.Error(1)
}

func (m *MockDocumentRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountRegistrationsByDay(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) PushRefreshToken(ctx context.Context, userID, token string, maxTokens int) error {
	args := m.Called(ctx, userID, token, maxTokens)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRefreshToken(ctx context.Context, userID, oldToken, newToken string, maxTokens int) error {
	args := m.Called(ctx, userID, oldToken, newToken, maxTokens)
	return args.Error(0)
}

func (m *MockUserRepository) PruneRefreshTokens(ctx context.Context, userID string, tokens []string) error {
	args := m.Called(ctx, userID, tokens)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastActivity(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// testConfig returns the token settings shared by the auth tests.
func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTIssuer:                  "procurement-test",
		AccessTokenExpiryDuration:  15 * time.Minute,
		RefreshTokenExpiryDuration: 24 * time.Hour,
		MaxSessionsPerUser:         3,
	}
}

const (
	testUserID = "665f1c2ab3d4e5f601234567"
	testDocID  = "665f1c2ab3d4e5f6012345aa"
	testPOID   = "665f1c2ab3d4e5f6012345bb"
)
