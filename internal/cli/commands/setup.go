package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/devreg/internal/catalog"
	"github.com/leapstack-labs/devreg/internal/cli/config"
	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/internal/state"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *registry.Registry
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the configured registry loaded.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutRegistry(cmd)

	reg, err := loadRegistry(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	cmdCtx.Registry = reg
	return cmdCtx, nil
}

// NewCommandContextWithoutRegistry creates a CommandContext without loading
// the catalog file. Useful for commands that create or inspect files directly.
func NewCommandContextWithoutRegistry(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// OpenStore opens and migrates the snapshot database.
// Returns the store and a cleanup function that must be called (typically via defer).
func (c *CommandContext) OpenStore() (*state.SQLiteStore, func(), error) {
	if c.Cfg.StatePath != ":memory:" {
		stateDir := filepath.Dir(c.Cfg.StatePath)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0750); err != nil {
				return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	store := state.NewSQLiteStore(c.Logger)
	if err := store.Open(c.Cfg.StatePath); err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = store.Close()
	}
	return store, cleanup, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		CatalogsFile: os.Getenv("DEVREG_CATALOGS_FILE"),
		StatePath:    getEnvOrDefault("DEVREG_STATE_PATH", config.DefaultStateFile),
		LogLevel:     config.DefaultLogLevel,
		OutputFormat: getEnvOrDefault("DEVREG_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func loadRegistry(cfg *config.Config, logger *slog.Logger) (*registry.Registry, error) {
	if err := cfg.ValidateCatalogFile(); err != nil {
		return nil, err
	}

	reg, err := catalog.Load(cfg.CatalogsFile)
	if err != nil {
		return nil, err
	}

	source := cfg.CatalogsFile
	if source == "" {
		source = "built-in"
	}
	logger.Debug("loaded registry", "source", source, "groups", len(reg.Groups()), "ids", reg.Count())
	return reg, nil
}

// idStyle renders a registry ID, highlighting the sentinel.
func idStyle(r *output.Renderer, id registry.ID) string {
	styles := r.Styles()
	if !id.Assigned() {
		return styles.Sentinel.Render(id.String())
	}
	return styles.ID.Render(id.String())
}
