package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RabbitURL is optional; change notifications are disabled when empty.
	RabbitURL string

	CategoryDeletePolicy string
	Location             *time.Location
	LogLevel             string
	CSRFCookieSecure     bool
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "eventhub"),
		DBSSLMode:            getEnv("DB_SSLMODE", "disable"),
		RabbitURL:            os.Getenv("RABBITMQ_URL"),
		CategoryDeletePolicy: getEnv("CATEGORY_DELETE_POLICY", "restrict"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		Location:             time.Local,
	}

	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			slog.Warn("unknown APP_TIMEZONE, using local time", "tz", tz, "error", err)
		} else {
			cfg.Location = loc
		}
	}

	if v := os.Getenv("CSRF_COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid CSRF_COOKIE_SECURE, using false", "value", v)
		}
		cfg.CSRFCookieSecure = secure
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Now returns the current time in the configured location. "Today" for the
// dashboard and the stat filters is derived from it.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
