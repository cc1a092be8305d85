package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr      = ":8080"
	defaultJWTTTL    = "24h"
	defaultAppEnv    = "dev"
	defaultDBDSN     = "tourista.db"
	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	AppEnv           string
	Addr             string
	DatabaseURL      string
	JWTSecret        string
	JWTTTL           time.Duration
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads configuration from the environment, with .env as a convenience
// for local development. Missing values fall back to dev defaults; production
// deployments must set DATABASE_URL and JWT_SECRET explicitly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Addr:             getEnv("ADDR", defaultAddr),
		DatabaseURL:      getEnv("DATABASE_URL", defaultDBDSN),
		JWTSecret:        getEnv("JWT_SECRET", defaultJWTSecret),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		cfg.TelegramChatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
	}

	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside dev")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
