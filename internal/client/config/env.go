package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is loaded first if it exists, so
// development setups can keep their settings next to the checkout.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CLASSTRACK_SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("CLASSTRACK_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("CLASSTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLASSTRACK_REMINDER_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ReminderPollInterval = d
		}
	}
}
