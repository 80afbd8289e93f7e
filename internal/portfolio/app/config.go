package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	StorageDriver string // Storage driver (sqlite, memory) (default: sqlite)
	DatabaseFile  string // Path to SQLite database file (default: ./portfolio.db)
	SessionStore  string // Session backend (store, redis) (default: store)
	RedisAddr     string // Redis address when SessionStore is redis (default: localhost:6379)

	SessionTTL    time.Duration // Session lifetime (default: 7 days)
	ResetTokenTTL time.Duration // Password reset token lifetime (default: 1h)
	TOTPIssuer    string        // Issuer shown in authenticator apps (default: Portfolio)
	PublicBaseURL string        // Public origin for reset links (default: http://localhost:8080)

	SMTPAddr string // SMTP host:port; empty means log-only mail delivery
	SMTPUser string
	SMTPPass string
	SMTPFrom string // From address (default: no-reply@localhost)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		StorageDriver: getEnvOrDefault("STORAGE_DRIVER", "sqlite"),
		DatabaseFile:  getEnvOrDefault("PORTFOLIO_DATABASE_FILE", "portfolio.db"),
		SessionStore:  getEnvOrDefault("SESSION_STORE", "store"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),

		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", 7*24*time.Hour),
		ResetTokenTTL: getEnvDurationOrDefault("RESET_TOKEN_TTL", 1*time.Hour),
		TOTPIssuer:    getEnvOrDefault("TOTP_ISSUER", "Portfolio"),
		PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),

		SMTPAddr: os.Getenv("SMTP_ADDR"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnvOrDefault("SMTP_FROM", "no-reply@localhost"),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
