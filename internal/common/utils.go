package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/urfave/cli/v2"
)

// NewLogger returns the JSON stderr logger every command uses.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the file named by --config, or the default file if present.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	if path == "" {
		path = models.DefaultConfigFile
	}
	cfg, err := models.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	// An explicitly requested file must exist.
	if c.IsSet("config") {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

// StringOption resolves a string setting: explicit flag, then config, then flag default.
func StringOption(c *cli.Context, flag, fromConfig string) string {
	if c.IsSet(flag) || fromConfig == "" {
		return c.String(flag)
	}
	return fromConfig
}

// IntOption resolves an int setting the same way. Zero in the config means unset.
func IntOption(c *cli.Context, flag string, fromConfig int) int {
	if c.IsSet(flag) || fromConfig == 0 {
		return c.Int(flag)
	}
	return fromConfig
}
