package services_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/repositories/repository_mocks"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *repository_mocks.MockUserRepositoryInterface
	auditRepo       *repository_mocks.MockAuditLogRepositoryInterface
	passwordService *service_mocks.MockPasswordServiceInterface
	tokenService    *service_mocks.MockTokenServiceInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	authService     services.AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter("authentication_event", gomock.Any()).AnyTimes()
	s.authService = services.NewAuthService(s.userRepo, s.auditRepo, s.passwordService, s.tokenService, s.metrics, slog.Default())
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_SuccessfulRegistration() {
	req := &dto.RegisterRequest{
		Username: "leafygreen",
		Email:    "new@example.com",
		Password: "SecurePass123!",
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed_password", nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.NotNil(user)
	s.Equal(req.Email, user.Email)
	s.Equal(req.Username, user.Username)
	s.Equal(models.RoleUser, user.Role)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual(req.Password, user.PasswordHash)
}

func (s *AuthServiceTestSuite) TestRegister_EmailAlreadyExists() {
	req := &dto.RegisterRequest{
		Username: "anothername",
		Email:    "existing@example.com",
		Password: "SecurePass123!",
	}

	existingUser := &models.User{
		ID:    42,
		Email: req.Email,
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(existingUser, nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrUserAlreadyExists, err)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_UsernameAlreadyExists() {
	req := &dto.RegisterRequest{
		Username: "takenname",
		Email:    "fresh@example.com",
		Password: "SecurePass123!",
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(&models.User{ID: 7, Username: req.Username}, nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrUserAlreadyExists, err)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_AdminRoleNotSelfAssignable() {
	req := &dto.RegisterRequest{
		Username: "ambitious",
		Email:    "ambitious@example.com",
		Password: "SecurePass123!",
		Role:     string(models.RoleAdmin),
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed_password", nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.Equal(models.RoleUser, user.Role)
}

func (s *AuthServiceTestSuite) TestRegister_FarmerRoleAllowed() {
	req := &dto.RegisterRequest{
		Username: "greenthumb",
		Email:    "farmer@example.com",
		Password: "SecurePass123!",
		Role:     string(models.RoleFarmer),
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed_password", nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.Equal(models.RoleFarmer, user.Role)
}

func (s *AuthServiceTestSuite) TestRegister_HashingFailure() {
	req := &dto.RegisterRequest{
		Username: "weakling",
		Email:    "weak@example.com",
		Password: "123",
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("", errors.New("password must be at least 8 characters long")).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")
	s.Error(err)
	s.Contains(err.Error(), "password must be at least 8 characters")
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_SuccessfulLogin() {
	email := "test@example.com"
	password := "SecurePass123!"

	user := &models.User{
		ID:           101,
		Username:     "plantlover",
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleUser,
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	s.userRepo.EXPECT().GetByEmail(email).Return(user, nil).Times(1)
	s.passwordService.EXPECT().ComparePassword(password, user.PasswordHash).Return(true).Times(1)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("access_token", expiresAt, nil).Times(1)
	s.tokenService.EXPECT().GenerateRefreshToken(user).Return("refresh_token", time.Now().Add(7*24*time.Hour), nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.Login(&dto.LoginRequest{Email: email, Password: password}, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.NotNil(tokens)
	s.Equal("access_token", tokens.AccessToken)
	s.Equal("refresh_token", tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
	s.Equal(expiresAt, tokens.ExpiresAt)
	s.Equal(user.Email, tokens.User.Email)
}

func (s *AuthServiceTestSuite) TestLogin_RecordsAuthenticationEvents() {
	email := "test@example.com"
	user := &models.User{
		ID:           101,
		Username:     "plantlover",
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleUser,
	}

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	authService := services.NewAuthService(s.userRepo, s.auditRepo, s.passwordService, s.tokenService, metrics, slog.Default())

	s.userRepo.EXPECT().GetByEmail(email).Return(user, nil).Times(2)
	s.passwordService.EXPECT().ComparePassword("right", user.PasswordHash).Return(true).Times(1)
	s.passwordService.EXPECT().ComparePassword("wrong", user.PasswordHash).Return(false).Times(1)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("access_token", time.Now().Add(15*time.Minute), nil).Times(1)
	s.tokenService.EXPECT().GenerateRefreshToken(user).Return("refresh_token", time.Now().Add(7*24*time.Hour), nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	metrics.EXPECT().
		IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"}).
		Times(1)
	metrics.EXPECT().
		IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"}).
		Times(1)

	_, err := authService.Login(&dto.LoginRequest{Email: email, Password: "right"}, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)

	_, err = authService.Login(&dto.LoginRequest{Email: email, Password: "wrong"}, "192.168.1.1", "Mozilla/5.0")
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrInvalidCredentials, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := &models.User{
		ID:           101,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)
	s.passwordService.EXPECT().ComparePassword("wrong", user.PasswordHash).Return(false).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.Login(&dto.LoginRequest{Email: user.Email, Password: "wrong"}, "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrInvalidCredentials, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_SuccessfulRefresh() {
	user := &models.User{
		ID:       101,
		Username: "plantlover",
		Email:    "test@example.com",
		Role:     models.RoleUser,
	}

	claims := &models.CustomClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: services.TokenTypeRefresh,
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	s.tokenService.EXPECT().ValidateRefreshToken("valid_refresh").Return(claims, nil).Times(1)
	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("new_access", expiresAt, nil).Times(1)
	s.tokenService.EXPECT().GenerateRefreshToken(user).Return("new_refresh", time.Now().Add(7*24*time.Hour), nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.RefreshTokens("valid_refresh", "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.Equal("new_access", tokens.AccessToken)
	s.Equal("new_refresh", tokens.RefreshToken)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	s.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, services.ErrInvalidToken).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.RefreshTokens("garbage", "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_AccountGone() {
	claims := &models.CustomClaims{
		UserID:    999,
		Email:     "deleted@example.com",
		TokenType: services.TokenTypeRefresh,
	}

	s.tokenService.EXPECT().ValidateRefreshToken("orphan_refresh").Return(claims, nil).Times(1)
	s.userRepo.EXPECT().GetByID(claims.UserID).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.RefreshTokens("orphan_refresh", "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_EmailChangedSinceIssue() {
	user := &models.User{
		ID:    101,
		Email: "renamed@example.com",
	}

	claims := &models.CustomClaims{
		UserID:    user.ID,
		Email:     "old@example.com",
		TokenType: services.TokenTypeRefresh,
	}

	s.tokenService.EXPECT().ValidateRefreshToken("stale_refresh").Return(claims, nil).Times(1)
	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tokens, err := s.authService.RefreshTokens("stale_refresh", "192.168.1.1", "Mozilla/5.0")
	s.Equal(services.ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}
