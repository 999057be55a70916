package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eyesonplants/internal/config"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories/repository_mocks"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestTokenGateSuite(t *testing.T) {
	suite.Run(t, new(TokenGateSuite))
}

type TokenGateSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userRepo     *repository_mocks.MockUserRepositoryInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	tokenService services.TokenServiceInterface
	jwtConfig    *config.JWTConfig
	gate         *TokenGate
	e            *echo.Echo
	ctx          context.Context
}

func (s *TokenGateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	signingKey, err := config.GenerateSigningKey()
	s.NoError(err)

	s.jwtConfig = &config.JWTConfig{
		SigningKey:           signingKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		PublicPathPrefixes:   []string{"/api/v1/auth/", "/health"},
		RefreshPath:          "/api/v1/auth/refresh",
	}

	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.gate = NewTokenGate(s.tokenService, s.userRepo, s.jwtConfig, s.metrics, slog.Default())
	s.e = echo.New()
	s.ctx = context.Background()
}

func (s *TokenGateSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TokenGateSuite) testUser() *models.User {
	return &models.User{
		ID:       101,
		Username: "gardener",
		Email:    "gardener@example.com",
		Role:     models.RoleUser,
	}
}

func (s *TokenGateSuite) accessToken(user *models.User) string {
	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)
	return token
}

func (s *TokenGateSuite) TestDecide_PublicPathSkipsGating() {
	decision := s.gate.Decide(s.ctx, http.MethodPost, "/api/v1/auth/login", "")

	s.True(decision.Allowed())
	s.Nil(decision.Principal)
}

func (s *TokenGateSuite) TestDecide_PreflightSkipsGating() {
	decision := s.gate.Decide(s.ctx, http.MethodOptions, "/api/v1/orders", "")

	s.True(decision.Allowed())
	s.Nil(decision.Principal)
}

func (s *TokenGateSuite) TestDecide_NoHeaderProceedsUnauthenticated() {
	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "")

	s.True(decision.Allowed())
	s.Nil(decision.Principal)
}

func (s *TokenGateSuite) TestDecide_NonBearerHeaderProceedsUnauthenticated() {
	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Basic dXNlcjpwYXNz")

	s.True(decision.Allowed())
	s.Nil(decision.Principal)
}

func (s *TokenGateSuite) TestDecide_ValidTokenAttachesPrincipal() {
	user := s.testUser()
	token := s.accessToken(user)

	s.userRepo.EXPECT().
		ExistsWithCredentials(gomock.Any(), user.ID, user.Email).
		Return(true, nil).
		Times(1)

	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+token)

	s.True(decision.Allowed())
	s.Require().NotNil(decision.Principal)
	s.Equal(user.ID, decision.Principal.UserID)
	s.Equal(user.Email, decision.Principal.Email)
	s.Equal(models.RoleUser, decision.Principal.Role)
	s.Equal("ROLE_USER", decision.Principal.Authority)
	s.NotEmpty(decision.Principal.TokenID)
}

func (s *TokenGateSuite) TestDecide_MalformedTokenRejected() {
	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer not.a.token")

	s.False(decision.Allowed())
	s.Nil(decision.Principal)
}

func (s *TokenGateSuite) TestDecide_TamperedSignatureRejected() {
	token := s.accessToken(s.testUser())

	// Flip the low bit of the final signature character's alphabet index.
	// The replacement shares the character's top bits, which a lax base64
	// decoder discards as padding, so only strict decoding catches it.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	tampered := []byte(token)
	last := len(tampered) - 1
	idx := strings.IndexByte(alphabet, tampered[last])
	s.Require().GreaterOrEqual(idx, 0)
	tampered[last] = alphabet[idx^1]

	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+string(tampered))

	s.False(decision.Allowed())
}

func (s *TokenGateSuite) TestDecide_ExpiredTokenRejected() {
	shortConfig := *s.jwtConfig
	shortConfig.AccessTokenDuration = 1 * time.Millisecond
	shortService := services.NewTokenService(&shortConfig)
	gate := NewTokenGate(shortService, s.userRepo, &shortConfig, s.metrics, slog.Default())

	token, _, err := shortService.GenerateAccessToken(s.testUser())
	s.NoError(err)

	time.Sleep(10 * time.Millisecond)

	decision := gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+token)

	s.False(decision.Allowed())
	s.Equal("expired_token", decision.Reason)
}

func (s *TokenGateSuite) TestDecide_RefreshTokenOnAccessPathRejected() {
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(s.testUser())
	s.NoError(err)

	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+refreshToken)

	s.False(decision.Allowed())
	s.Equal("refresh_token_on_access_path", decision.Reason)
}

func (s *TokenGateSuite) TestDecide_DeletedAccountRejected() {
	user := s.testUser()
	token := s.accessToken(user)

	s.userRepo.EXPECT().
		ExistsWithCredentials(gomock.Any(), user.ID, user.Email).
		Return(false, nil).
		Times(1)

	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+token)

	s.False(decision.Allowed())
	s.Equal("account_gone_or_changed", decision.Reason)
}

func (s *TokenGateSuite) TestDecide_LookupFailureIsServerError() {
	user := s.testUser()
	token := s.accessToken(user)

	s.userRepo.EXPECT().
		ExistsWithCredentials(gomock.Any(), user.ID, user.Email).
		Return(false, errors.New("connection refused")).
		Times(1)

	decision := s.gate.Decide(s.ctx, http.MethodGet, "/api/v1/orders", "Bearer "+token)

	s.False(decision.Allowed())
	s.Equal("account_lookup_failed", decision.Reason)
}

func (s *TokenGateSuite) TestMiddleware_ValidTokenSetsContext() {
	user := s.testUser()
	token := s.accessToken(user)

	s.userRepo.EXPECT().
		ExistsWithCredentials(gomock.Any(), user.ID, user.Email).
		Return(true, nil).
		Times(1)

	handler := s.gate.Middleware()(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		s.Equal(models.RoleUser, c.Get("user_role"))
		s.Equal("ROLE_USER", c.Get("authority"))
		s.Equal(false, c.Get("is_admin"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TokenGateSuite) TestMiddleware_InvalidTokenGets401() {
	handler := s.gate.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body map[string]map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("AUTH_003", body["error"]["code"])
}

func (s *TokenGateSuite) TestMiddleware_RejectionHidesFailureKind() {
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(s.testUser())
	s.NoError(err)

	handler := s.gate.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, header := range []string{
		"Bearer invalid.jwt.token",
		"Bearer " + refreshToken,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(handler(c))
		s.Equal(http.StatusUnauthorized, rec.Code)

		var body map[string]map[string]interface{}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("AUTH_003", body["error"]["code"])
		s.Equal("Invalid token", body["error"]["message"])
	}
}

func (s *TokenGateSuite) TestMiddleware_RecordsGateDecisionOutcome() {
	user := s.testUser()
	token := s.accessToken(user)

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	gate := NewTokenGate(s.tokenService, s.userRepo, s.jwtConfig, metrics, slog.Default())
	handler := gate.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.userRepo.EXPECT().
		ExistsWithCredentials(gomock.Any(), user.ID, user.Email).
		Return(true, nil).
		Times(1)

	metrics.EXPECT().
		IncrementCounter("auth_gate_decision", map[string]string{"outcome": "authenticated"}).
		Times(1)
	metrics.EXPECT().
		IncrementCounter("auth_gate_decision", map[string]string{"outcome": "rejected"}).
		Times(1)
	metrics.EXPECT().
		IncrementCounter("auth_gate_decision", map[string]string{"outcome": "anonymous"}).
		Times(1)

	for _, header := range []string{
		"Bearer " + token,
		"Bearer invalid.jwt.token",
		"",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		s.NoError(handler(s.e.NewContext(req, rec)))
	}
}

func (s *TokenGateSuite) TestMiddleware_PublicPathReachesHandler() {
	called := false
	handler := s.gate.Middleware()(func(c echo.Context) error {
		called = true
		s.Nil(c.Get("user_id"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TokenGateSuite) TestRequireAuthenticated_NoPrincipal() {
	handler := RequireAuthenticated()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TokenGateSuite) TestRequireAuthenticated_WithPrincipal() {
	handler := RequireAuthenticated()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", int64(101))

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TokenGateSuite) TestRequireRole_AuthorizedWithCorrectRole() {
	handler := RequireAdmin()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("authority", models.RoleAdmin.Authority())

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TokenGateSuite) TestRequireRole_ForbiddenWithWrongRole() {
	handler := RequireAdmin()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("authority", models.RoleUser.Authority())

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *TokenGateSuite) TestRequireRole_MissingPrincipal() {
	handler := RequireAdmin()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TokenGateSuite) TestRequireFarmer_AdminPassesToo() {
	handler := RequireFarmer()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, authority := range []string{"ROLE_FARMER", "ROLE_ADMIN"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.Set("authority", authority)

		s.NoError(handler(c))
		s.Equal(http.StatusOK, rec.Code)
	}
}
