package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var supportedJWTAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// ValidateConfig checks the configuration against the rules of the current environment
func ValidateConfig(cfg *Config) error {
	var errors []string

	if !supportedJWTAlgorithms[cfg.JWTAlgorithm] {
		errors = append(errors, ValidationError{Field: "JWT_ALG", Message: "must be one of HS256, HS384, HS512"}.Error())
	}
	if cfg.AccessTokenExpireMinutes <= 0 {
		errors = append(errors, ValidationError{Field: "ACCESS_TOKEN_EXPIRE_MINUTES", Message: "must be positive"}.Error())
	}
	if cfg.LLMTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{Field: "LLM_TIMEOUT_SECONDS", Message: "must be positive"}.Error())
	}
	if len(cfg.CORSOrigins) == 0 {
		errors = append(errors, ValidationError{Field: "CORS_ORIGINS", Message: "at least one origin is required"}.Error())
	}

	if IsProduction() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			errors = append(errors, "jwt_secret secret is required in production")
		}
		if cfg.DatabaseURL == "" && cfg.DBHost == "" {
			errors = append(errors, "DATABASE_URL or DB_HOST is required in production")
		}
	} else if GetEnvironment() == CI && cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET environment variable is required in CI environment")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
