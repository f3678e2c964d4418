package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a .env file if present. Missing files are fine: production
// deployments set real environment variables.
func Load() {
	_ = godotenv.Load()
}

// Get returns the env var or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the env var parsed as int, or a fallback.
func GetInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetBool returns the env var parsed as bool, or a fallback.
func GetBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// AppEnv returns the runtime environment, defaulting to development.
func AppEnv() string {
	return Get("APP_ENV", "development")
}

// SessionSecret returns the JWT signing secret for session tokens.
func SessionSecret() string {
	return Get("SESSION_SECRET", "dev-session-secret")
}
