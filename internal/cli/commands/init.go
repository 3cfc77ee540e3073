package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/devreg/internal/catalog"
	"github.com/leapstack-labs/devreg/internal/cli/config"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

const configTemplate = `# devreg configuration
catalogs_file: %s
state_path: %s
output: auto
log_level: warn

server:
  port: %d
  watch: true
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new devreg project",
		Long: `Initialize a devreg project with a configuration file and a catalog file.

This creates:
  - devreg.yaml configuration file
  - registry.yaml catalog file, seeded with the built-in landing catalogs`,
		Example: `  # Initialize in current directory
  devreg init

  # Initialize in a new directory
  devreg init web/registry

  # Force overwrite existing files
  devreg init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContextWithoutRegistry(cmd), dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir string, force bool) error {
	r := cmdCtx.Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.DefaultConfigFile)
	catalogPath := filepath.Join(dir, config.DefaultCatalogFile)

	if !force {
		for _, p := range []string{configPath, catalogPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists. Use --force to overwrite", p)
			}
		}
	}

	content := fmt.Sprintf(configTemplate, config.DefaultCatalogFile, config.DefaultStateFile, config.DefaultPort)
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	reg := registry.Landing()
	if err := catalog.WriteFile(catalogPath, reg); err != nil {
		return err
	}

	cmdCtx.Logger.Debug("initialized project", "dir", dir)

	r.Success(fmt.Sprintf("Initialized devreg project in %s", dir))
	r.Muted(fmt.Sprintf("Created %s and %s (%d groups, %d IDs)",
		config.DefaultConfigFile, config.DefaultCatalogFile, len(reg.Groups()), reg.Count()))
	return nil
}
