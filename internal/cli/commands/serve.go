package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/devreg/internal/server"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the registry inspector server",
		Long: `Start a local HTTP server that external tools query to resolve and
describe registry IDs.

The server provides:
- /api/groups and /api/elements for catalog contents
- /api/groups/{group}/{index} for position resolution
- /updates, a datastar SSE stream patched on every catalog reload`,
		Example: `  # Start on the configured port
  devreg serve

  # Start on a custom port and reload when the catalog file changes
  devreg serve --port 3000 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8787)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload when the catalog file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	// CLI flags override config file
	srvCfg := cmdCtx.Cfg.GetServerConfig()
	port := srvCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}
	watch := srvCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}
	if watch && cmdCtx.Cfg.CatalogsFile == "" {
		cmdCtx.Renderer.Warning("--watch needs a catalog file; serving the built-in catalogs without reload")
		watch = false
	}

	srv := server.New(server.Config{
		Registry:    cmdCtx.Registry,
		CatalogPath: cmdCtx.Cfg.CatalogsFile,
		Port:        port,
		Watch:       watch,
		Logger:      cmdCtx.Logger,
	})

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting inspector on http://localhost:%d\n", port)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
