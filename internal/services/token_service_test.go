package services

import (
	"strings"
	"testing"
	"time"

	"eyesonplants/internal/config"
	"eyesonplants/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	signingKey      []byte
	service         TokenServiceInterface
	issuer          string
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.signingKey, err = config.GenerateSigningKey()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = time.Hour
	s.refreshDuration = 7 * 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		SigningKey:           s.signingKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  s.accessDuration,
		RefreshTokenDuration: s.refreshDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) testUser() *models.User {
	return &models.User{
		ID:       101,
		Username: "plantlover",
		Email:    "test@example.com",
		Role:     models.RoleUser,
	}
}

// Test GenerateSigningKey
func (s *TokenServiceTestSuite) TestGenerateSigningKey() {
	key, err := config.GenerateSigningKey()
	s.NoError(err)
	s.Len(key, 64)
}

// Test GenerateAccessToken
func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.testUser())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(2 * time.Hour)))
}

// Test GenerateRefreshToken
func (s *TokenServiceTestSuite) TestGenerateRefreshToken() {
	token, expiresAt, err := s.service.GenerateRefreshToken(s.testUser())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(8 * 24 * time.Hour)))
}

// Test ValidateAccessToken with valid token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	user := s.testUser()

	token, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.NotNil(claims)
	s.Equal(user.ID, claims.UserID)
	s.Equal(user.Email, claims.Email)
	s.Equal(user.Username, claims.Username)
	s.Equal(user.Role, claims.Role)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
}

// Test ValidateAccessToken with empty token
func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.Error(err)
	s.Contains(err.Error(), "empty token")
	s.Nil(claims)
}

// Test ValidateAccessToken with invalid format
func (s *TokenServiceTestSuite) TestValidateAccessToken_InvalidFormat() {
	claims, err := s.service.ValidateAccessToken("invalid.token.format")
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

// Test ValidateAccessToken with malformed signature
func (s *TokenServiceTestSuite) TestValidateAccessToken_MalformedToken() {
	claims, err := s.service.ValidateAccessToken("eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.invalid.signature")
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

// Test ValidateAccessToken rejects a signature whose final character was
// swapped for one sharing its top bits. A lax base64 decoder treats the two
// as identical because the trailing bits are padding.
func (s *TokenServiceTestSuite) TestValidateAccessToken_TrailingBitsTamperRejected() {
	token, _, err := s.service.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	tampered := []byte(token)
	last := len(tampered) - 1
	idx := strings.IndexByte(alphabet, tampered[last])
	s.Require().GreaterOrEqual(idx, 0)
	tampered[last] = alphabet[idx^1]

	claims, err := s.service.ValidateAccessToken(string(tampered))
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

// Test ValidateAccessToken rejects a refresh token
func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsRefreshToken() {
	token, _, err := s.service.GenerateRefreshToken(s.testUser())
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid token type")
	s.Nil(claims)
}

// Test ValidateRefreshToken with valid token
func (s *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	user := s.testUser()

	token, _, err := s.service.GenerateRefreshToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateRefreshToken(token)
	s.NoError(err)
	s.NotNil(claims)
	s.Equal(user.ID, claims.UserID)
	s.Equal(user.Email, claims.Email)
	s.Equal(TokenTypeRefresh, claims.TokenType)
}

// Test ValidateRefreshToken rejects an access token
func (s *TokenServiceTestSuite) TestValidateRefreshToken_RejectsAccessToken() {
	token, _, err := s.service.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	claims, err := s.service.ValidateRefreshToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid token type")
	s.Nil(claims)
}

// Test expired token
func (s *TokenServiceTestSuite) TestExpiredToken() {
	shortService := NewTokenService(&config.JWTConfig{
		SigningKey:           s.signingKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  1 * time.Millisecond,
		RefreshTokenDuration: 1 * time.Millisecond,
	})

	token, _, err := shortService.GenerateAccessToken(s.testUser())
	s.NoError(err)

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	claims, err := shortService.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "token is expired")
	s.Nil(claims)
}

// Test wrong issuer
func (s *TokenServiceTestSuite) TestWrongIssuer() {
	service1 := NewTokenService(&config.JWTConfig{
		SigningKey:           s.signingKey,
		Issuer:               "issuer1",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	service2 := NewTokenService(&config.JWTConfig{
		SigningKey:           s.signingKey,
		Issuer:               "issuer2",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	// Generate token with issuer1
	token, _, err := service1.GenerateAccessToken(s.testUser())
	s.NoError(err)

	// Try to validate with different issuer
	claims, err := service2.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid issuer")
	s.Nil(claims)
}

// Test different keys
func (s *TokenServiceTestSuite) TestDifferentKeys() {
	otherKey, err := config.GenerateSigningKey()
	s.Require().NoError(err)

	service2 := NewTokenService(&config.JWTConfig{
		SigningKey:           otherKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	// Generate token with the suite's key
	token, _, err := s.service.GenerateAccessToken(s.testUser())
	s.NoError(err)

	// Try to validate with a different key
	claims, err := service2.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

// Test ExtractTokenFromHeader with valid bearer token
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_ValidBearer() {
	token, err := s.service.ExtractTokenFromHeader("Bearer eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.token")
	s.NoError(err)
	s.Equal("eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.token", token)
}

// Test ExtractTokenFromHeader with lowercase bearer
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_LowercaseBearer() {
	token, err := s.service.ExtractTokenFromHeader("bearer eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.token")
	s.NoError(err)
	s.Equal("eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.token", token)
}

// Test ExtractTokenFromHeader with no bearer prefix
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_NoBearer() {
	token, err := s.service.ExtractTokenFromHeader("eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9.token")
	s.Error(err)
	s.Empty(token)
}

// Test ExtractTokenFromHeader with empty header
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_Empty() {
	token, err := s.service.ExtractTokenFromHeader("")
	s.Error(err)
	s.Empty(token)
}

// Test ExtractTokenFromHeader with only bearer
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_OnlyBearer() {
	token, err := s.service.ExtractTokenFromHeader("Bearer")
	s.Error(err)
	s.Empty(token)
}

// Test ExtractTokenFromHeader with bearer and space only
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_BearerSpaceOnly() {
	token, err := s.service.ExtractTokenFromHeader("Bearer ")
	s.Error(err)
	s.Empty(token)
}

// Test GetTokenExpiry
func (s *TokenServiceTestSuite) TestGetTokenExpiry() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.testUser())
	s.NoError(err)

	expiry, err := s.service.GetTokenExpiry(token)
	s.NoError(err)
	s.WithinDuration(expiresAt, expiry, time.Second)
}

// Test JTI uniqueness across issued tokens
func (s *TokenServiceTestSuite) TestUniqueJTI() {
	user := s.testUser()

	first, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	second, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims1, err := s.service.ValidateAccessToken(first)
	s.Require().NoError(err)
	claims2, err := s.service.ValidateAccessToken(second)
	s.Require().NoError(err)

	s.NotEqual(claims1.ID, claims2.ID)

	// Verify JTI is a valid UUID
	_, err = uuid.Parse(claims1.ID)
	s.NoError(err)
}

// Benchmarks
func BenchmarkTokenService_GenerateAccessToken(b *testing.B) {
	key, err := config.GenerateSigningKey()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		SigningKey:           key,
		Issuer:               "test-issuer",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	user := &models.User{
		ID:       101,
		Username: "plantlover",
		Email:    "test@example.com",
		Role:     models.RoleUser,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := ts.GenerateAccessToken(user)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	key, err := config.GenerateSigningKey()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		SigningKey:           key,
		Issuer:               "test-issuer",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	user := &models.User{
		ID:       101,
		Username: "plantlover",
		Email:    "test@example.com",
		Role:     models.RoleUser,
	}

	token, _, err := ts.GenerateAccessToken(user)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ts.ValidateAccessToken(token)
		if err != nil {
			b.Fatal(err)
		}
	}
}
