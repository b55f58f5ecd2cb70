// Package config holds settings for the terminal front end. They come from the environment so the
// command line stays limited to a file name.
package config

import (
	"fmt"
	"strconv"
)

const (
	EnvLogPath  = "SPIRE_LOG"
	EnvVerbose  = "SPIRE_VERBOSE"
	EnvTabWidth = "SPIRE_TABWIDTH"

	DefaultTabWidth = 4
	maxTabWidth     = 16
)

type Config struct {
	LogPath  string // Where to write debug logs. Empty discards them.
	Verbose  bool   // Show the debug line above the status line.
	TabWidth int    // Columns a tab advances to, on screen only.
}

func Default() Config {
	return Config{TabWidth: DefaultTabWidth}
}

// FromEnv reads the configuration through getenv, normally os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	cfg.LogPath = getenv(EnvLogPath)

	if v := getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	if v := getenv(EnvTabWidth); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTabWidth, err)
		}
		if width < 1 || width > maxTabWidth {
			return Config{}, fmt.Errorf("%s: %d not in [1, %d]", EnvTabWidth, width, maxTabWidth)
		}
		cfg.TabWidth = width
	}
	return cfg, nil
}
