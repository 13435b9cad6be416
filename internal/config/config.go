package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Telegram
	TelegramToken string
	TelegramDebug bool
	// WebhookURL switches the bot from long polling to webhooks when set.
	WebhookURL string
	// WebhookSecret is sent to Telegram as secret_token and checked on every
	// webhook request. Defaults to a hash of the token.
	WebhookSecret string

	// Database: a postgres:// URL or a SQLite file path
	DatabaseURL string

	// HTTP server for /metrics, /healthz and the webhook
	HTTPAddr string

	LogLevel string
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		DatabaseURL:   getEnvDefault("DATABASE_URL", "./data/bills.db"),
		HTTPAddr:      getEnvDefault("HTTP_ADDR", ":8080"),
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	if cfg.WebhookSecret == "" {
		cfg.WebhookSecret = deriveSecret(cfg.TelegramToken)
	} else if !secretPattern.MatchString(cfg.WebhookSecret) {
		return nil, fmt.Errorf("WEBHOOK_SECRET must be 1-256 characters of A-Z, a-z, 0-9, _ or -")
	}

	if v := os.Getenv("TELEGRAM_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_DEBUG %q: %w", v, err)
		}
		cfg.TelegramDebug = debug
	}

	return cfg, nil
}

// Telegram's allowed alphabet for secret_token.
var secretPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}$`)

func deriveSecret(token string) string {
	sum := sha256.Sum256([]byte("webhook:" + token))
	return hex.EncodeToString(sum[:])
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
