package config

import (
	"encoding/json"
	"os"

	"classtrack/internal/flagx"
	"classtrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerAddr           string         `json:"server_addr"`
	TokenFile            string         `json:"token_file"`
	LogLevel             string         `json:"log_level"`
	ReminderPollInterval timex.Duration `json:"reminder_poll_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; if absent, nothing is loaded.
// Fields missing from the JSON leave the current value untouched.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ReminderPollInterval.Duration > 0 {
		cfg.ReminderPollInterval = jc.ReminderPollInterval.Duration
	}
}
