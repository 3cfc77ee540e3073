package commands

import (
	"runtime"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display devreg version and build information.

With -o json the version, Go runtime and platform are printed as an object.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContextWithoutRegistry(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(output.VersionInfo{
					Name:     "devreg",
					Version:  version,
					Go:       runtime.Version(),
					Platform: runtime.GOOS + "/" + runtime.GOARCH,
				})
			}
			r.Printf("devreg v%s\n", version)
			r.Println("Component registry and instrumentation layer")
			return nil
		},
	}
}
