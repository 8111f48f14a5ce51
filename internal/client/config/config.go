// Package config handles configuration for the classtrack CLI, layered as
// defaults → environment (.env aware) → JSON file → command-line flags,
// with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the classtrack CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend (the /api and /api/auth base paths
//     are appended by the app).
//   - TokenFile: path of the persisted session token; empty means the
//     default location under the user config dir.
//   - LogLevel: debug/info/warn/error.
//   - ReminderPollInterval: how often the logged-in watcher checks for due
//     reminders.
type Config struct {
	ServerAddr           string
	TokenFile            string
	LogLevel             string
	ReminderPollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:5000"
	c.TokenFile = ""
	c.LogLevel = "info"
	c.ReminderPollInterval = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
