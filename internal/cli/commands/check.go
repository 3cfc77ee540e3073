package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/internal/state"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the registry for ID drift against a snapshot",
		Long: `Compare the current registry with a saved snapshot, position by position.

A position whose ID changed, or that lost its ID, breaks external tools that
recorded the old ID; the command fails when any such drift is found. Newly
assigned IDs are reported but do not fail the check.`,
		Example: `  # Compare with the latest snapshot
  devreg check

  # Compare with a specific snapshot
  devreg check --against 6f1c0a7e-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, against)
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Snapshot ID to compare with (default: latest)")

	return cmd
}

func runCheck(cmd *cobra.Command, against string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	store, cleanup, err := cmdCtx.OpenStore()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var baseline *state.Snapshot
	if against != "" {
		baseline, err = store.GetSnapshot(ctx, against)
	} else {
		baseline, err = store.LatestSnapshot(ctx)
	}
	if err != nil {
		return err
	}
	if baseline == nil {
		return fmt.Errorf("no snapshot to compare against\nHint: run 'devreg snapshot save' after publishing")
	}

	old, err := store.LoadRegistry(ctx, baseline.ID)
	if err != nil {
		return err
	}

	drifts := registry.Diff(old, cmdCtx.Registry)
	result := output.CheckOutput{
		Baseline: snapshotInfo(baseline),
		Drifts:   drifts,
	}
	if result.Drifts == nil {
		result.Drifts = []registry.Drift{}
	}
	for _, d := range drifts {
		if d.Breaking() {
			result.Breaking++
		}
	}
	result.Stable = result.Breaking == 0

	cmdCtx.Logger.Debug("checked registry drift", "baseline", baseline.ID, "drifts", len(drifts), "breaking", result.Breaking)

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(result); err != nil {
			return err
		}
	} else {
		renderCheck(r, result)
	}

	if !result.Stable {
		return fmt.Errorf("%d breaking ID changes since snapshot %s", result.Breaking, baseline.ID)
	}
	return nil
}

func renderCheck(r *output.Renderer, result output.CheckOutput) {
	name := result.Baseline.ID
	if result.Baseline.Label != "" {
		name = fmt.Sprintf("%s (%s)", result.Baseline.Label, result.Baseline.ID)
	}

	if len(result.Drifts) == 0 {
		r.Success(fmt.Sprintf("No ID drift since snapshot %s", name))
		return
	}

	r.Header(1, fmt.Sprintf("ID drift since %s", name))
	rows := make([][]string, 0, len(result.Drifts))
	for _, d := range result.Drifts {
		where := d.Group
		pos := strconv.Itoa(d.Position)
		if d.Group == "" {
			where = "(element)"
			pos = ""
		}
		rows = append(rows, []string{string(d.Kind), where, pos, d.Old.String(), d.New.String()})
	}
	r.Table([]string{"Kind", "Group", "Position", "Old", "New"}, rows)

	if result.Stable {
		r.Success(fmt.Sprintf("%d IDs added, none changed or removed", len(result.Drifts)))
	}
}
