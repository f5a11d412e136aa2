package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/handlers"
	"github.com/dartsops/darts_management_app/internal/platform/config"
	"github.com/dartsops/darts_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OperatorService ---
type MockOperatorService struct {
	mock.Mock
}

func (m *MockOperatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) GetOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) RegisterOperator(ctx context.Context, req dto.RegisterOperatorRequest) (*domain.Operator, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingOperatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID, req, requestingOperatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) FindOrCreateGoogleOperator(ctx context.Context, info domain.GoogleUserInfo) (*domain.Operator, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) AuthenticateOperator(ctx context.Context, username, password string) (*domain.Operator, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

var _ portssvc.OperatorSvcFacade = (*MockOperatorService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, operator *domain.Operator) (string, time.Time, error) {
	args := m.Called(ctx, operator)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForUserInfo(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockOperatorService *MockOperatorService
	mockTokenService    *MockTokenService
	mockGoogleOAuth     *MockGoogleOAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockOperatorService = new(MockOperatorService)
	suite.mockTokenService = new(MockTokenService)
	suite.mockGoogleOAuth = new(MockGoogleOAuthService)

	cfg := &config.Config{
		JWTSecret:     "test-secret-key-that-is-long-enough",
		AuthRateLimit: "100-M",
		IsProduction:  true, // skip swagger registration in tests
	}

	container := &portssvc.ServiceContainer{
		Operator:    suite.mockOperatorService,
		Token:       suite.mockTokenService,
		GoogleOAuth: suite.mockGoogleOAuth,
	}

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	posthogClient := utils.InitializePosthogClient("", logger)

	handlers.RegisterRoutes(suite.router, cfg, container, posthogClient)
}

func (suite *AuthHandlerTestSuite) testOperator() *domain.Operator {
	return &domain.Operator{
		OperatorID:   uuid.NewString(),
		Name:         "Sam Thrower",
		Username:     "sam@example.com",
		Email:        "sam@example.com",
		AuthProvider: domain.ProviderGoogle,
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestGoogleLoginRedirect_SetsStateAndRedirects() {
	loginURL := "https://accounts.google.com/o/oauth2/auth?state=state-abc"

	suite.mockGoogleOAuth.On("GenerateStateString", mock.Anything).Return("state-abc", nil).Once()
	suite.mockGoogleOAuth.On("GetGoogleLoginURL", mock.Anything, "state-abc").Return(loginURL).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal(loginURL, w.Header().Get("Location"))

	var stateCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "oauth_state" {
			stateCookie = cookie
		}
	}
	suite.Require().NotNil(stateCookie, "state cookie must be set before redirecting")
	suite.Equal("state-abc", stateCookie.Value)
	suite.True(stateCookie.HttpOnly)

	suite.mockGoogleOAuth.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestGoogleCallback_Success() {
	operator := suite.testOperator()
	info := &domain.GoogleUserInfo{
		ID:            "google-sub-1",
		Email:         operator.Email,
		Name:          operator.Name,
		VerifiedEmail: true,
	}

	suite.mockGoogleOAuth.On("ExchangeCodeForUserInfo", mock.Anything, "auth-code-xyz").Return(info, nil).Once()
	suite.mockOperatorService.On("FindOrCreateGoogleOperator", mock.Anything, *info).Return(operator, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, operator).
		Return("signed-jwt", time.Now().Add(time.Hour), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-abc&code=auth-code-xyz", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-abc"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-jwt", resp.AccessToken)
	suite.Equal(operator.OperatorID, resp.Operator.OperatorID)

	suite.mockGoogleOAuth.AssertExpectations(suite.T())
	suite.mockOperatorService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestGoogleCallback_StateMismatchRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=auth-code-xyz", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-abc"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGoogleOAuth.AssertNotCalled(suite.T(), "ExchangeCodeForUserInfo")
}

func (suite *AuthHandlerTestSuite) TestGoogleCallback_MissingStateCookieRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-abc&code=auth-code-xyz", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGoogleOAuth.AssertNotCalled(suite.T(), "ExchangeCodeForUserInfo")
}

func (suite *AuthHandlerTestSuite) TestGoogleCallback_UnverifiedEmailRejected() {
	info := &domain.GoogleUserInfo{
		ID:            "google-sub-1",
		Email:         "sam@example.com",
		VerifiedEmail: false,
	}

	suite.mockGoogleOAuth.On("ExchangeCodeForUserInfo", mock.Anything, "auth-code-xyz").Return(info, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-abc&code=auth-code-xyz", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-abc"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockOperatorService.AssertNotCalled(suite.T(), "FindOrCreateGoogleOperator")
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
