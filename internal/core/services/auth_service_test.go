package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	userRepo *MockUserRepository
	tokens   portssvc.TokenSvcFacade
	sessions portssvc.SessionSvcFacade
	svc      portssvc.AuthSvcFacade
	user     *domain.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return s.now }

	cfg := testConfig()
	s.userRepo = new(MockUserRepository)
	s.tokens = services.NewTokenService(cfg, services.WithClock(clock))
	s.sessions = services.NewSessionService(s.userRepo, s.tokens, cfg.MaxSessionsPerUser)
	s.svc = services.NewAuthService(s.userRepo, s.tokens, s.sessions, services.WithAuthClock(clock))

	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	s.user = &domain.User{
		UserID:        testUserID,
		Email:         "alice@example.com",
		PasswordHash:  hash,
		DisplayName:   "Alice",
		Role:          domain.RoleManager,
		RefreshTokens: []string{},
	}
}

func (s *AuthServiceTestSuite) mintPair() *domain.TokenPair {
	pair, err := s.tokens.GenerateTokens(s.ctx, domain.TokenPayload{UserID: s.user.UserID, Email: s.user.Email, Role: s.user.Role})
	s.Require().NoError(err)
	return pair
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(s.user, nil).Once()
	s.userRepo.On("PushRefreshToken", mock.Anything, testUserID, mock.AnythingOfType("string"), 3).Return(nil).Once()

	result, err := s.svc.Login(s.ctx, dto.LoginRequest{Email: "  Alice@Example.com ", Password: "correct-horse"})

	s.Require().NoError(err)
	s.Equal(testUserID, result.User.UserID)
	s.NotEmpty(result.Tokens.AccessToken)
	s.NotEmpty(result.Tokens.RefreshToken)
	s.True(result.User.HasRefreshToken(result.Tokens.RefreshToken))
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(s.user, nil).Once()

	result, err := s.svc.Login(s.ctx, dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.userRepo.AssertNotCalled(s.T(), "PushRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.svc.Login(s.ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(apperrors.MsgInvalidCredentials, appErr.Message)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(s.user, nil).Once()

	_, err := s.svc.Register(s.ctx, dto.RegisterRequest{Email: "alice@example.com", Password: "secret1", DisplayName: "Alice"})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_DefaultsToStudent() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "bob@example.com" && u.Role == domain.RoleStudent && utils.ValidatePassword("secret1", u.PasswordHash)
	})).Return(nil).Once()
	s.userRepo.On("PushRefreshToken", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 3).Return(nil).Once()

	result, err := s.svc.Register(s.ctx, dto.RegisterRequest{Email: "Bob@example.com", Password: "secret1", DisplayName: "Bob"})

	s.Require().NoError(err)
	s.Equal(domain.RoleStudent, result.User.Role)
	s.True(utils.IsValidObjectID(result.User.UserID))
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRefreshToken_RotatesAndRevokesOldToken() {
	old := s.mintPair()
	s.user.RefreshTokens = []string{old.RefreshToken}
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.user, nil)
	s.userRepo.On("ReplaceRefreshToken", mock.Anything, testUserID, old.RefreshToken, mock.AnythingOfType("string"), 3).
		Run(func(args mock.Arguments) {
			s.user.RefreshTokens = []string{args.String(3)}
		}).
		Return(nil).Once()

	s.now = s.now.Add(time.Minute)
	fresh, err := s.svc.RefreshToken(s.ctx, old.RefreshToken)

	s.Require().NoError(err)
	s.NotEqual(old.RefreshToken, fresh.RefreshToken)
	s.Equal([]string{fresh.RefreshToken}, s.user.RefreshTokens)

	// The rotated-out token can no longer be exchanged.
	_, err = s.svc.RefreshToken(s.ctx, old.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.userRepo.AssertNumberOfCalls(s.T(), "ReplaceRefreshToken", 1)
}

func (s *AuthServiceTestSuite) TestRefreshToken_RejectsAccessToken() {
	pair := s.mintPair()

	_, err := s.svc.RefreshToken(s.ctx, pair.AccessToken)

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_ActiveSession() {
	pair := s.mintPair()
	s.user.RefreshTokens = []string{pair.RefreshToken}
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.user, nil).Once()
	s.userRepo.On("TouchLastActivity", mock.Anything, testUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	claims, user, err := s.svc.Authenticate(s.ctx, pair.AccessToken, false)

	s.Require().NoError(err)
	s.Equal(domain.AccessToken, claims.Type)
	s.Equal(testUserID, user.UserID)
	s.Require().NotNil(user.LastActiveAt)
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestAuthenticate_RevokedSession() {
	revoked := s.mintPair()
	other := s.mintPair()
	s.user.RefreshTokens = []string{other.RefreshToken}
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.user, nil).Once()

	_, _, err := s.svc.Authenticate(s.ctx, revoked.AccessToken, false)

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.userRepo.AssertNotCalled(s.T(), "TouchLastActivity", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_RefreshEndpointNeedsRefreshToken() {
	pair := s.mintPair()

	_, _, err := s.svc.Authenticate(s.ctx, pair.AccessToken, true)

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogout_RemovesToken() {
	pair := s.mintPair()
	s.user.RefreshTokens = []string{pair.RefreshToken}
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.user, nil).Once()
	s.userRepo.On("RemoveRefreshToken", mock.Anything, testUserID, pair.RefreshToken).Return(nil).Once()

	s.NoError(s.svc.Logout(s.ctx, pair.RefreshToken))
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLoginWithGoogle_Disabled() {
	_, err := s.svc.LoginWithGoogle(s.ctx, "id-token")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
