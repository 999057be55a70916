package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Push     PushConfig
	AI       AIConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds the symmetric signing key and token lifetimes. The key is
// loaded once at startup and never mutated afterwards.
type JWTConfig struct {
	SigningKey           []byte
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	Issuer               string
	// PublicPathPrefixes lists the request path prefixes that bypass the
	// authentication gate entirely.
	PublicPathPrefixes []string
	// RefreshPath is the only path on which a refresh token is accepted.
	RefreshPath string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	PasswordMinLength  int
}

// PushConfig configures the push-notification sender.
type PushConfig struct {
	Enabled   bool
	BaseURL   string
	ServerKey string
	Timeout   time.Duration
}

// AIConfig configures the plant-disease prediction service proxy.
type AIConfig struct {
	PredictURL string
	Timeout    time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "plants_user"),
			Password:        getEnv("DB_PASSWORD", "plants_password"),
			Name:            getEnv("DB_NAME", "plants_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  getMillisEnv("JWT_ACCESS_EXPIRATION_MS", time.Hour),
			RefreshTokenDuration: getMillisEnv("JWT_REFRESH_EXPIRATION_MS", 7*24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "eyes-on-plants"),
			PublicPathPrefixes:   getSliceEnv("AUTH_PUBLIC_PATHS", defaultPublicPaths()),
			RefreshPath:          getEnv("AUTH_REFRESH_PATH", "/api/v1/auth/refresh"),
		},
		Push: PushConfig{
			Enabled:   getBoolEnv("PUSH_ENABLED", true),
			BaseURL:   getEnv("PUSH_BASE_URL", "https://fcm.googleapis.com/fcm"),
			ServerKey: getEnv("PUSH_SERVER_KEY", ""),
			Timeout:   getDurationEnv("PUSH_TIMEOUT", 10*time.Second),
		},
		AI: AIConfig{
			PredictURL: getEnv("AI_SERVICE_URL", "http://127.0.0.1:5000/predict"),
			Timeout:    getDurationEnv("AI_SERVICE_TIMEOUT", 30*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadKeyErr error
	config.JWT.SigningKey, loadKeyErr = config.loadSigningKey()
	if loadKeyErr != nil {
		log.Fatal("Failed to load JWT signing key:", loadKeyErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getMillisEnv reads a token lifetime expressed as an integer millisecond
// count, matching the mobile clients' configuration convention.
func getMillisEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// defaultPublicPaths lists the endpoints reachable without a token: the auth
// family, API docs, health/metrics, and the read-only product catalog.
func defaultPublicPaths() []string {
	return []string{
		"/api/v1/auth/",
		"/docs",
		"/openapi.json",
		"/health",
		"/metrics",
		"/api/v1/products/search",
		"/api/v1/care-guides",
	}
}

// loadSigningKey loads the base64-encoded HMAC signing key.
// Priority order:
// 1. If JWT_SECRET is set, use it (works in all environments)
// 2. If production and the env var is missing, fail (production requires an explicit key)
// 3. If development/testing and the env var is missing, generate a random key (dev convenience)
func (c *Config) loadSigningKey() ([]byte, error) {
	secretB64 := os.Getenv("JWT_SECRET")

	if secretB64 != "" {
		key, err := base64.StdEncoding.DecodeString(secretB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWT_SECRET: %w", err)
		}
		if len(key) < 32 {
			return nil, errors.New("JWT_SECRET must decode to at least 32 bytes")
		}
		return key, nil
	}

	if c.IsProduction() {
		return nil, errors.New("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: generating random JWT signing key (set JWT_SECRET to persist tokens across restarts)")
	return GenerateSigningKey()
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateSigningKey generates a random 64-byte HMAC key
func GenerateSigningKey() ([]byte, error) {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}
