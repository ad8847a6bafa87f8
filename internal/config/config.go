package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Gateway selection values for the GATEWAY variable.
const (
	GatewayConsole  = "console"
	GatewayTelegram = "telegram"
	GatewayEmail    = "email"
)

// Config keeps runtime settings for the reminder daemon.
type Config struct {
	DatabaseURL     string
	ScanInterval    time.Duration
	DueWindow       time.Duration
	DispatchWorkers int

	Gateway        string
	TelegramToken  string
	SendgridAPIKey string
	FromName       string
	FromEmail      string

	LogLevel string
}

// Load reads configuration from the environment (and an optional .env
// file) with sane defaults.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:     getEnv("DATABASE_URL", "reminder_engine.db"),
		ScanInterval:    getDuration("SCAN_INTERVAL", time.Minute),
		DueWindow:       getDuration("DUE_WINDOW", time.Minute),
		DispatchWorkers: getInt("DISPATCH_WORKERS", 4),
		Gateway:         strings.ToLower(getEnv("GATEWAY", GatewayConsole)),
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		SendgridAPIKey:  strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		FromName:        getEnv("FROM_NAME", "Reminder Engine"),
		FromEmail:       getEnv("FROM_EMAIL", "no-reply@localhost"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.ScanInterval <= 0 {
		return cfg, fmt.Errorf("SCAN_INTERVAL must be positive")
	}
	if cfg.DueWindow <= 0 {
		return cfg, fmt.Errorf("DUE_WINDOW must be positive")
	}
	if cfg.DispatchWorkers <= 0 {
		cfg.DispatchWorkers = 1
	}

	switch cfg.Gateway {
	case GatewayConsole:
	case GatewayTelegram:
		if cfg.TelegramToken == "" {
			return cfg, fmt.Errorf("TELEGRAM_TOKEN is required for GATEWAY=telegram")
		}
	case GatewayEmail:
		if cfg.SendgridAPIKey == "" {
			return cfg, fmt.Errorf("SENDGRID_API_KEY is required for GATEWAY=email")
		}
	default:
		return cfg, fmt.Errorf("unknown GATEWAY %q", cfg.Gateway)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
