package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func authResult(role domain.Role) *domain.AuthResult {
	return &domain.AuthResult{
		User:   &domain.User{UserID: testUserID, Email: "ada@example.com", DisplayName: "Ada", Role: role, PasswordHash: "secret-hash"},
		Tokens: domain.TokenPair{
			AccessToken:           "access.jwt",
			RefreshToken:          "refresh.jwt",
			AccessTokenExpiresAt:  time.Now().Add(15 * time.Minute),
			RefreshTokenExpiresAt: time.Now().Add(24 * time.Hour),
		},
	}
}

func (s *HandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"}
	s.auth.On("Login", mock.Anything, req).Return(authResult(domain.RoleMember), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", req, "")

	s.Equal(http.StatusOK, w.Code)
	var body map[string]any
	s.decodeData(w, &body)
	s.Equal(testUserID, body["id"])
	s.Equal("access.jwt", body["accessToken"])
	s.Equal("refresh.jwt", body["refreshToken"])
	s.NotContains(body, "passwordHash")
	s.NotContains(w.Body.String(), "secret-hash")
	s.auth.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestLogin_InvalidBody() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "not-an-email"}, "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.auth.AssertNotCalled(s.T(), "Login", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestLogin_WrongPasswordIsGeneric() {
	req := dto.LoginRequest{Email: "ada@example.com", Password: "wrong"}
	s.auth.On("Login", mock.Anything, req).
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidCredentials, apperrors.ErrUnauthorized)).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", req, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(apperrors.MsgInvalidCredentials, s.errorMessage(w))
}

func (s *HandlerTestSuite) TestLogin_RateLimited() {
	req := dto.LoginRequest{Email: "ada@example.com", Password: "wrong"}
	s.auth.On("Login", mock.Anything, req).
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidCredentials, apperrors.ErrUnauthorized))

	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/api/v1/auth/login", req, "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.NotEmpty(w.Header().Get("X-RateLimit-Remaining"))
	}

	w := s.do(http.MethodPost, "/api/v1/auth/login", req, "")
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.auth.AssertNumberOfCalls(s.T(), "Login", 3)
}

func (s *HandlerTestSuite) TestGoogleLogin_RateLimited() {
	req := dto.GoogleLoginRequest{IDToken: "forged.id.token"}
	s.auth.On("LoginWithGoogle", mock.Anything, req.IDToken).
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidCredentials, apperrors.ErrUnauthorized))

	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/api/v1/auth/google", req, "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.NotEmpty(w.Header().Get("X-RateLimit-Remaining"))
	}

	w := s.do(http.MethodPost, "/api/v1/auth/google", req, "")
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.auth.AssertNumberOfCalls(s.T(), "LoginWithGoogle", 3)
}

func (s *HandlerTestSuite) TestGoogleCodeLogin_RateLimited() {
	req := dto.ExchangeCodeRequest{Code: "stolen-code"}
	s.auth.On("LoginWithGoogleCode", mock.Anything, req.Code).
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidCredentials, apperrors.ErrUnauthorized))

	for i := 0; i < 3; i++ {
		s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/auth/google/code", req, "").Code)
	}

	w := s.do(http.MethodPost, "/api/v1/auth/google/code", req, "")
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.auth.AssertNumberOfCalls(s.T(), "LoginWithGoogleCode", 3)
}

func (s *HandlerTestSuite) TestRegister_Created() {
	req := dto.RegisterRequest{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada"}
	s.auth.On("Register", mock.Anything, req).Return(authResult(domain.RoleStudent), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", req, "")

	s.Equal(http.StatusCreated, w.Code)
	var body dto.AuthResponse
	s.decodeData(w, &body)
	s.Equal("STUDENT", body.Role)
	s.Equal("access.jwt", body.AccessToken)
}

func (s *HandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada"}
	s.auth.On("Register", mock.Anything, req).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", req, "")

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestRegister_RejectsPrivilegedRole() {
	req := map[string]string{"email": "ada@example.com", "password": "secret1", "displayName": "Ada", "role": "ADMIN"}

	w := s.do(http.MethodPost, "/api/v1/auth/register", req, "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.auth.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestVerify() {
	token := s.generateTestToken(testUserID, domain.RoleMember)

	w := s.do(http.MethodGet, "/api/v1/auth/verify", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.VerifyResponse
	s.decodeData(w, &body)
	s.True(body.Valid)
}

func (s *HandlerTestSuite) TestVerify_RevokedSession() {
	s.auth.On("Authenticate", mock.Anything, "revoked.jwt", false).
		Return(nil, nil, apperrors.ErrUnauthorized).Once()

	w := s.do(http.MethodGet, "/api/v1/auth/verify", nil, "revoked.jwt")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(apperrors.MsgInvalidToken, s.errorMessage(w))
}

func (s *HandlerTestSuite) TestMe() {
	token := s.generateTestToken(testUserID, domain.RoleManager)

	w := s.do(http.MethodGet, "/api/v1/auth/me", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.UserResponse
	s.decodeData(w, &body)
	s.Equal(testUserID, body.UserID)
	s.Equal("MANAGER", body.Role)
}

func (s *HandlerTestSuite) TestRefreshToken_UsesBearerRefreshToken() {
	claims := &domain.TokenClaims{UserID: testUserID, Role: domain.RoleMember, Type: domain.RefreshToken}
	user := &domain.User{UserID: testUserID, Role: domain.RoleMember}
	s.auth.On("Authenticate", mock.Anything, "refresh.jwt", true).Return(claims, user, nil).Once()
	s.auth.On("RefreshToken", mock.Anything, "refresh.jwt").Return(&domain.TokenPair{
		AccessToken:  "access.new",
		RefreshToken: "refresh.new",
	}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/refresh-token", nil, "refresh.jwt")

	s.Equal(http.StatusOK, w.Code)
	var body dto.TokenResponse
	s.decodeData(w, &body)
	s.Equal("access.new", body.AccessToken)
	s.Equal("refresh.new", body.RefreshToken)
	s.auth.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestRefreshToken_ReusedTokenRejected() {
	claims := &domain.TokenClaims{UserID: testUserID, Role: domain.RoleMember, Type: domain.RefreshToken}
	user := &domain.User{UserID: testUserID, Role: domain.RoleMember}
	s.auth.On("Authenticate", mock.Anything, "refresh.old", true).Return(claims, user, nil).Once()
	s.auth.On("RefreshToken", mock.Anything, "refresh.old").
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, apperrors.MsgInvalidToken, apperrors.ErrUnauthorized)).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/refresh-token", nil, "refresh.old")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(apperrors.MsgInvalidToken, s.errorMessage(w))
}

func (s *HandlerTestSuite) TestLogout() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	s.auth.On("Logout", mock.Anything, "refresh.jwt").Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/logout", dto.RefreshTokenRequest{RefreshToken: "refresh.jwt"}, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	s.decodeData(w, &body)
	s.Equal("Logged out successfully", body.Message)
}
