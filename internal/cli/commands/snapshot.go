package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/internal/state"
	"github.com/spf13/cobra"
)

// NewSnapshotCommand creates the snapshot command and its subcommands.
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and manage published registries",
		Long: `Snapshots record the registry as published, so later catalog edits can be
checked against it with 'devreg check'.`,
	}

	cmd.AddCommand(newSnapshotSaveCommand())
	cmd.AddCommand(newSnapshotListCommand())
	cmd.AddCommand(newSnapshotDeleteCommand())

	return cmd
}

func newSnapshotSaveCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Save the current registry as a snapshot",
		Example: `  devreg snapshot save --label v1.4.0`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, cleanup, err := cmdCtx.OpenStore()
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := store.SaveSnapshot(cmd.Context(), label, cmdCtx.Registry)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(snapshotInfo(snap))
			}
			r.Success(fmt.Sprintf("Saved snapshot %s (%d groups, %d entries)", snap.ID, snap.Groups, snap.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Label for the snapshot (e.g. a release tag)")

	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutRegistry(cmd)

			store, cleanup, err := cmdCtx.OpenStore()
			if err != nil {
				return err
			}
			defer cleanup()

			snaps, err := store.ListSnapshots(cmd.Context())
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			infos := make([]output.SnapshotInfo, 0, len(snaps))
			for _, s := range snaps {
				infos = append(infos, snapshotInfo(s))
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(infos)
			}
			if len(infos) == 0 {
				r.Muted("No snapshots yet. Run 'devreg snapshot save' to record one.")
				return nil
			}

			r.Header(1, fmt.Sprintf("Snapshots (%d total)", len(infos)))
			rows := make([][]string, 0, len(infos))
			for _, s := range infos {
				rows = append(rows, []string{
					s.ID,
					s.Label,
					s.CreatedAt.Local().Format(time.DateTime),
					strconv.Itoa(s.Groups),
					strconv.Itoa(s.Entries),
				})
			}
			r.Table([]string{"ID", "Label", "Created", "Groups", "Entries"}, rows)
			return nil
		},
	}
}

func newSnapshotDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutRegistry(cmd)

			store, cleanup, err := cmdCtx.OpenStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmdCtx.Renderer.Success(fmt.Sprintf("Deleted snapshot %s", args[0]))
			return nil
		},
	}
}

func snapshotInfo(s *state.Snapshot) output.SnapshotInfo {
	return output.SnapshotInfo{
		ID:        s.ID,
		Label:     s.Label,
		CreatedAt: s.CreatedAt,
		Groups:    s.Groups,
		Entries:   s.Entries,
	}
}
