package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the server settings read from the environment.
type Config struct {
	AppPort int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	LogFile  string
	LogLevel string

	ContactRecipient string
	CORSOrigins      []string
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.AppPort = cast.ToInt(getEnv("APP_PORT", "8080"))

	cfg.DBHost = cast.ToString(getEnv("DB_HOST", "localhost"))
	cfg.DBPort = cast.ToString(getEnv("DB_PORT", "5432"))
	cfg.DBUser = cast.ToString(getEnv("DB_USER", "postgres"))
	cfg.DBPassword = cast.ToString(getEnv("DB_PASSWORD", "password"))
	cfg.DBName = cast.ToString(getEnv("DB_NAME", "fleetdesk"))
	cfg.DBSSLMode = cast.ToString(getEnv("DB_SSLMODE", "disable"))
	cfg.DBTimezone = cast.ToString(getEnv("DB_TIMEZONE", "UTC"))

	cfg.LogFile = cast.ToString(getEnv("LOG_FILE", "./logs/app.log"))
	cfg.LogLevel = cast.ToString(getEnv("LOG_LEVEL", "debug"))

	cfg.ContactRecipient = cast.ToString(getEnv("CONTACT_RECIPIENT", "support@fleetdesk.example"))
	cfg.CORSOrigins = splitList(cast.ToString(getEnv("CORS_ORIGINS", "")))

	return cfg
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
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
