package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, registration and the token lifecycle.
type authHandler struct {
	authService   portssvc.AuthSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newAuthHandler(as portssvc.AuthSvcFacade, posthogClient *utils.PosthogClientWrapper) *authHandler {
	return &authHandler{
		authService:   as,
		posthogClient: posthogClient,
	}
}

// registerAuthRoutes sets up the public and guarded authentication routes.
// Every route that issues tokens without a bearer token is behind the login rate limiter.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter, posthogClient *utils.PosthogClientWrapper) {
	h := newAuthHandler(authService, posthogClient)
	guard := middleware.AuthGuard(authService)
	rateLimit := middleware.RateLimit(loginLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", rateLimit, h.login)
		auth.POST("/register", rateLimit, h.register)
		auth.POST("/google", rateLimit, h.googleLogin)
		auth.POST("/google/code", rateLimit, h.googleCodeLogin)

		auth.POST("/logout", guard, h.logout)
		auth.POST("/refresh-token", guard, h.refreshToken)
		auth.GET("/verify", guard, h.verify)
		auth.GET("/me", guard, h.me)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns the profile with a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "login request")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "log in")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, result.User.UserID, "user_logged_in", map[string]any{"method": "password"})
	respondWithData(c, http.StatusOK, dto.ToAuthResponse(result))
}

// register godoc
// @Summary Register new user
// @Description Creates a new account and signs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "register request")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", result.User.UserID))
	middleware.PosthogEvent(c, h.posthogClient, result.User.UserID, "user_registered", map[string]any{"role": string(result.User.Role)})
	respondWithData(c, http.StatusCreated, dto.ToAuthResponse(result))
}

// googleLogin godoc
// @Summary Sign in with Google
// @Description Verifies a Google ID token, creating the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "google login request")
		return
	}

	result, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondWithError(c, err, "sign in with google")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, result.User.UserID, "user_logged_in", map[string]any{"method": "google"})
	respondWithData(c, http.StatusOK, dto.ToAuthResponse(result))
}

// googleCodeLogin godoc
// @Summary Sign in with a Google authorization code
// @Description Exchanges an authorization code for an ID token and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/google/code [post]
func (h *authHandler) googleCodeLogin(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "google code request")
		return
	}

	result, err := h.authService.LoginWithGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondWithError(c, err, "exchange google code")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, result.User.UserID, "user_logged_in", map[string]any{"method": "google_code"})
	respondWithData(c, http.StatusOK, dto.ToAuthResponse(result))
}

// logout godoc
// @Summary Log out
// @Description Revokes the given refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "logout request")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondWithError(c, err, "log out")
		return
	}
	respondWithData(c, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// refreshToken godoc
// @Summary Rotate the token pair
// @Description Exchanges the refresh token presented as the bearer token for a new pair.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	token, ok := middleware.GetTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), token)
	if err != nil {
		respondWithError(c, err, "refresh token")
		return
	}
	respondWithData(c, http.StatusOK, dto.ToTokenResponse(*pair))
}

// verify godoc
// @Summary Verify the access token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/verify [get]
func (h *authHandler) verify(c *gin.Context) {
	resp := dto.VerifyResponse{Valid: true}
	if claims, ok := middleware.GetClaimsFromContext(c); ok && !claims.ExpiresAt.IsZero() {
		resp.ExpiresAt = &claims.ExpiresAt
	}
	respondWithData(c, http.StatusOK, resp)
}

// me godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	respondWithData(c, http.StatusOK, dto.ToUserResponse(user))
}
