package app

import (
	"os"
	"strconv"
	"time"

	"github.com/malliaquatic/clubd/pkg/jwtx"
)

type Config struct {
	Issuer string // Issuer claim for session tokens (default: clubd)

	StoreDriver  string // Storage driver (sqlite, memory) (default: sqlite)
	DatabaseFile string // Path to SQLite database file (default: ./club.db)
	PepperFile   string // Path to file containing pepper for secret hashing (default: ./pepper)

	// PHC-format argon2id hashes of the two access PINs. Generated with
	// the hashpin tool; an empty hash disables that tier entirely.
	AdminPINHash      string
	SuperAdminPINHash string

	UserTokenTTL  time.Duration // Member session lifetime (default: 30 days)
	AdminTokenTTL time.Duration // Admin session lifetime (default: 12h)

	DepartureRetention int // Departure records served to admins (default: 20)

	GeminiAPIKey string // Optional: assistant is disabled when empty
	GeminiModel  string // Upstream model name (default: gemini-2.0-flash)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer: getEnvOrDefault("CLUB_ISSUER", "clubd"),

		StoreDriver:  getEnvOrDefault("CLUB_STORE_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("CLUB_DATABASE_FILE", "club.db"),
		PepperFile:   getEnvOrDefault("CLUB_PEPPER_FILE", "pepper"),

		AdminPINHash:      os.Getenv("CLUB_ADMIN_PIN_HASH"),
		SuperAdminPINHash: os.Getenv("CLUB_SUPER_ADMIN_PIN_HASH"),

		UserTokenTTL:  getEnvDurationOrDefault("CLUB_USER_TOKEN_TTL", jwtx.DefaultUserTokenTTL),
		AdminTokenTTL: getEnvDurationOrDefault("CLUB_ADMIN_TOKEN_TTL", jwtx.DefaultAdminTokenTTL),

		DepartureRetention: getEnvIntOrDefault("CLUB_DEPARTURE_RETENTION", 20),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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

	// Integer seconds also accepted, mainly for container env files.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
