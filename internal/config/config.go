package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings read from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTExpiresIn time.Duration
}

// MustLoad reads configuration from the environment (loading .env first if
// present) and exits the process when a required secret is missing.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: TokenTTL(),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET is not set")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("FATAL: DATABASE_URL is not set")
	}

	return cfg
}

// TokenTTL parses JWT_EXPIRES_IN. Plain Go durations work ("168h"), and a
// trailing "d" day suffix is accepted ("7d"). Defaults to 7 days.
func TokenTTL() time.Duration {
	raw := strings.TrimSpace(os.Getenv("JWT_EXPIRES_IN"))
	if raw == "" {
		return 7 * 24 * time.Hour
	}
	if strings.HasSuffix(raw, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(raw, "d")); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return 7 * 24 * time.Hour
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
