package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/dartsops/darts_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles authentication related requests.
type authHandler struct {
	operatorService portssvc.OperatorSvcFacade
	tokenService    portssvc.TokenSvcFacade
	googleOAuth     portssvc.GoogleOAuthSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		operatorService: services.Operator,
		tokenService:    services.Token,
		googleOAuth:     services.GoogleOAuth,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	rate, _ := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/google", limitMiddleware, h.googleLogin)
		auth.GET("/google/login", h.googleLoginRedirect)
		auth.GET("/google/callback", limitMiddleware, h.googleCallback)
	}
}

// oauthStateCookie holds the CSRF state between the redirect and the callback.
const oauthStateCookie = "oauth_state"

// register godoc
// @Summary Register a new operator
// @Description Creates a new password-authenticated operator account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterOperatorRequest true "Operator Registration Info"
// @Success 201 {object} dto.OperatorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (username or email exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	operator, err := h.operatorService.RegisterOperator(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username or email already in use"})
			return
		}
		logger.Error("Failed to register operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register operator"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperatorResponse(operator))
}

// login godoc
// @Summary Operator login
// @Description Authenticates an operator and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	operator, err := h.operatorService.AuthenticateOperator(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	h.respondWithToken(c, logger, operator)
}

// googleLogin godoc
// @Summary Operator login via Google
// @Description Validates a Google ID token from the mobile client and returns a JWT access token, creating the operator account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID Token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	info, err := h.googleOAuth.ValidateIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google token"})
		return
	}
	if !info.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	operator, err := h.operatorService.FindOrCreateGoogleOperator(c.Request.Context(), *info)
	if err != nil {
		logger.Error("Failed to resolve google operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in with Google"})
		return
	}

	h.respondWithToken(c, logger, operator)
}

// googleLoginRedirect godoc
// @Summary Start the Google web sign-in flow
// @Description Redirects the browser to Google's consent screen. The CSRF state is stored in a short-lived cookie and checked again on the callback.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *authHandler) googleLoginRedirect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuth.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuth.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Complete the Google web sign-in flow
// @Description Verifies the CSRF state against the login cookie, exchanges the authorization code for the operator's Google profile, and returns a JWT access token, creating the operator account on first sign-in.
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state issued at /auth/google/login"
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	// The state is single-use; expire the cookie regardless of outcome.
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	info, err := h.googleOAuth.ExchangeCodeForUserInfo(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}
	if !info.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	operator, err := h.operatorService.FindOrCreateGoogleOperator(c.Request.Context(), *info)
	if err != nil {
		logger.Error("Failed to resolve google operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in with Google"})
		return
	}

	h.respondWithToken(c, logger, operator)
}

func (h *authHandler) respondWithToken(c *gin.Context, logger *slog.Logger, operator *domain.Operator) {
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), operator)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Operator:    dto.ToOperatorResponse(operator),
	})
}
