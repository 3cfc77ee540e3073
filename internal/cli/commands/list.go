package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var elements bool

	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List catalogs and their registry IDs",
		Long: `List the registered catalogs with their sizes, or the entries of one group.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all groups
  devreg list

  # List the entries of one group
  devreg list stat-card

  # Include static elements
  devreg list --elements -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runListGroup(cmd, args[0])
			}
			return runList(cmd, elements)
		},
	}

	cmd.Flags().BoolVar(&elements, "elements", false, "Include static elements")

	return cmd
}

func runList(cmd *cobra.Command, withElements bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	reg := cmdCtx.Registry
	r := cmdCtx.Renderer

	listOutput := output.ListOutput{
		Groups: make([]output.GroupInfo, 0, len(reg.Groups())),
		Summary: output.ListSummary{
			Groups:   len(reg.Groups()),
			Elements: len(reg.Elements()),
			IDs:      reg.Count(),
		},
	}
	for _, c := range reg.Catalogs() {
		listOutput.Groups = append(listOutput.Groups, output.GroupInfo{
			Name:        c.Group(),
			Description: c.Description(),
			Size:        c.Len(),
		})
	}
	if withElements {
		listOutput.Elements = reg.Elements()
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(listOutput)
	}

	r.Header(1, fmt.Sprintf("Groups (%d total)", listOutput.Summary.Groups))
	rows := make([][]string, 0, len(listOutput.Groups))
	for _, g := range listOutput.Groups {
		rows = append(rows, []string{g.Name, strconv.Itoa(g.Size), g.Description})
	}
	r.Table([]string{"Group", "Size", "Description"}, rows)

	if withElements {
		r.Println("")
		r.Header(1, fmt.Sprintf("Elements (%d total)", listOutput.Summary.Elements))
		r.Table([]string{"ID", "Name", "Description"}, entryRows(listOutput.Elements))
	}

	r.Muted(fmt.Sprintf("Total: %d groups, %d elements, %d IDs",
		listOutput.Summary.Groups, listOutput.Summary.Elements, listOutput.Summary.IDs))
	return nil
}

func runListGroup(cmd *cobra.Command, group string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	c, ok := cmdCtx.Registry.Catalog(group)
	if !ok {
		return fmt.Errorf("group %q not found", group)
	}

	info := output.GroupInfo{
		Name:        c.Group(),
		Description: c.Description(),
		Size:        c.Len(),
		Entries:     c.Entries(),
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, info.Name))
		r.Println("")
		if info.Description != "" {
			r.Println(output.FormatKeyValue("Description", info.Description))
		}
		r.Println(output.FormatKeyValue("Size", strconv.Itoa(info.Size)))
		r.Println("")
	default:
		r.Header(1, fmt.Sprintf("%s (%d)", info.Name, info.Size))
		if info.Description != "" {
			r.Muted(info.Description)
		}
	}

	rows := make([][]string, 0, len(info.Entries))
	for i, e := range info.Entries {
		rows = append(rows, []string{strconv.Itoa(i), e.ID.String(), e.Name, e.Description})
	}
	r.Table([]string{"Position", "ID", "Name", "Description"}, rows)
	return nil
}

func entryRows(entries []registry.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ID.String(), e.Name, e.Description})
	}
	return rows
}
