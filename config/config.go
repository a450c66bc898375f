package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Development-only signing secret. ValidateConfig refuses it in production.
const defaultJWTSecret = "dev-secret-change-me"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string
	APIPrefix  string

	// Database configuration. DatabaseURL wins over the discrete fields when set.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// CORS
	CORSOrigins []string

	// JWT configuration
	JWTSecret                string
	JWTAlgorithm             string
	AccessTokenExpireMinutes int

	// LLM configuration
	EmergentLLMKey    string
	LLMModel          string
	LLMAPIURL         string
	LLMTimeoutSeconds int

	// Optional estimate draft store
	RedisURL string

	// Optional meal image storage
	S3BucketName string
	AWSRegion    string
}

// LoadConfig builds a Config from .env, environment variables and Docker secrets, in that order
// of precedence for each key: environment, secret file, default.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("[Config] loaded .env file")
	}

	cfg := &Config{
		ServerPort: lookup("SERVER_PORT", "8001"),
		ServerHost: lookup("SERVER_HOST", "0.0.0.0"),
		APIPrefix:  lookup("API_PREFIX", "/api"),

		DatabaseURL: lookup("DATABASE_URL", ""),
		DBHost:      lookup("DB_HOST", "localhost"),
		DBPort:      lookup("DB_PORT", "5432"),
		DBUser:      lookup("DB_USER", "postgres"),
		DBPassword:  lookup("DB_PASSWORD", "postgres"),
		DBName:      lookup("DB_NAME", "calorie_counter"),
		DBSSLMode:   lookup("DB_SSL_MODE", "disable"),

		CORSOrigins: splitList(lookup("CORS_ORIGINS", "*")),

		JWTSecret:    lookup("JWT_SECRET", defaultJWTSecret),
		JWTAlgorithm: lookup("JWT_ALG", "HS256"),

		EmergentLLMKey: lookup("EMERGENT_LLM_KEY", ""),
		LLMModel:       lookup("LLM_MODEL", "gpt-4o"),
		LLMAPIURL:      lookup("LLM_API_URL", "https://api.openai.com/v1/chat/completions"),

		RedisURL: lookup("REDIS_URL", ""),

		S3BucketName: lookup("S3_BUCKET_NAME", ""),
		AWSRegion:    lookup("AWS_REGION", ""),
	}

	var err error
	if cfg.AccessTokenExpireMinutes, err = lookupInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60); err != nil {
		return nil, err
	}
	if cfg.LLMTimeoutSeconds, err = lookupInt("LLM_TIMEOUT_SECONDS", 60); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection string for gorm.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func lookup(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return fallback
}

func lookupInt(key string, fallback int) (int, error) {
	raw := lookup(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
