package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "resolve <group> [index...]",
		Short: "Resolve list positions to registry IDs",
		Long: `Resolve positions within a repeated UI group to their registry IDs.

Resolution never fails: positions without a catalog entry, and groups that
are not registered, resolve to the sentinel "noID".

Use --count to resolve a whole render pass (positions 0..count-1).`,
		Example: `  # Resolve the third stat card
  devreg resolve stat-card 2

  # Resolve several positions
  devreg resolve tech-badge 0 5 6

  # Resolve a render pass of 5 cards
  devreg resolve stat-card --count 5 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes, err := resolveIndexes(args[1:], count, cmd.Flags().Changed("count"))
			if err != nil {
				return err
			}
			return runResolve(cmd, args[0], indexes)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Resolve positions 0..count-1")

	return cmd
}

func resolveIndexes(args []string, count int, countSet bool) ([]int, error) {
	if countSet {
		if len(args) > 0 {
			return nil, fmt.Errorf("--count cannot be combined with explicit indexes")
		}
		if count < 0 {
			return nil, fmt.Errorf("--count must not be negative, got %d", count)
		}
		if count > registry.MaxResolveCount {
			return nil, fmt.Errorf("--count must be at most %d, got %d", registry.MaxResolveCount, count)
		}
		indexes := make([]int, count)
		for i := range indexes {
			indexes[i] = i
		}
		return indexes, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("at least one index or --count is required")
	}

	indexes := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: must be an integer", a)
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}

func runResolve(cmd *cobra.Command, group string, indexes []int) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	reg := cmdCtx.Registry
	r := cmdCtx.Renderer

	results := make([]output.Resolution, 0, len(indexes))
	for _, i := range indexes {
		e, miss := reg.Lookup(group, i)
		res := output.Resolution{Group: group, Index: i, ID: e.ID, Assigned: miss == registry.MissNone}
		if !res.Assigned {
			res.Miss = miss.String()
		}
		results = append(results, res)
	}

	cmdCtx.Logger.Debug("resolved positions", "group", group, "count", len(results))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(results)
	case output.ModeMarkdown:
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			rows = append(rows, []string{strconv.Itoa(res.Index), res.ID.String(), res.Miss})
		}
		r.Header(2, fmt.Sprintf("Group %s", group))
		r.Table([]string{"Index", "ID", "Miss"}, rows)
		return nil
	default:
		styles := r.Styles()
		for _, res := range results {
			line := fmt.Sprintf("%s[%d] → %s", group, res.Index, idStyle(r, res.ID))
			if res.Miss != "" {
				line += " " + styles.Muted.Render("("+res.Miss+")")
			}
			r.Println(line)
		}
		return nil
	}
}
