package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/devreg/internal/catalog"
	"github.com/leapstack-labs/devreg/internal/cli/config"
	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog file",
		Long: `Check that a catalog file is well-formed and that every registry ID is
unique, non-empty and not the reserved sentinel "noID".

Defaults to the configured catalog file.`,
		Example: `  # Validate the configured catalog file
  devreg validate

  # Validate another file
  devreg validate catalogs/next.yaml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutRegistry(cmd)
			path := cmdCtx.Cfg.CatalogsFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no catalog file to validate\nHint: pass a file or set catalogs_file in %s", config.DefaultConfigFile)
			}
			return runValidate(cmdCtx, path)
		},
	}
}

func runValidate(cmdCtx *CommandContext, path string) error {
	r := cmdCtx.Renderer

	result := output.ValidateOutput{File: path}
	reg, loadErr := catalog.Load(path)
	if loadErr == nil {
		result.Valid = true
		result.Groups = len(reg.Groups())
		result.IDs = reg.Count()
	} else {
		result.Errors = strings.Split(loadErr.Error(), "\n")
	}

	cmdCtx.Logger.Debug("validated catalog file", "path", path, "valid", result.Valid)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(result); err != nil {
			return err
		}
	default:
		if result.Valid {
			r.Success(fmt.Sprintf("%s is valid: %d groups, %d IDs", path, result.Groups, result.IDs))
		} else {
			for _, e := range result.Errors {
				r.Error(e)
			}
		}
	}

	if loadErr != nil {
		return fmt.Errorf("catalog file %s is invalid", path)
	}
	return nil
}
