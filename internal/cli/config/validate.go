package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("invalid output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}

	if c.Server != nil && (c.Server.Port < 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// ValidateCatalogFile checks that the configured catalog file exists.
func (c *Config) ValidateCatalogFile() error {
	if c.CatalogsFile == "" {
		return nil
	}
	if _, err := os.Stat(c.CatalogsFile); os.IsNotExist(err) {
		return fmt.Errorf("catalog file does not exist: %s\nHint: run 'devreg init' or use --catalogs to specify a different path", c.CatalogsFile)
	}
	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
// An empty name selects DefaultLogLevel.
func ParseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		name = DefaultLogLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
