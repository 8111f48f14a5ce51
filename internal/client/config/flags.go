package config

import (
	"flag"
	"os"
	"time"

	"classtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-t string   path to the session token file
//	-l string   log level: debug/info/warn/error
//	-i int      reminder poll interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the backend server")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path to the session token file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	pollInterval := fs.Int("i", int(cfg.ReminderPollInterval.Seconds()), "reminder poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReminderPollInterval = time.Duration(*pollInterval) * time.Second
}
