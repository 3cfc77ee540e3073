package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <id>",
		Short: "Show where a registry ID is declared and what it names",
		Long: `Show the group, position, name and description of a registry ID.

Works for positional IDs (e.g. stat-card-2) and static elements (e.g. hero-title).`,
		Example: `  devreg describe hero-title
  devreg describe stat-card-2 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, registry.ID(args[0]))
		},
	}
}

func runDescribe(cmd *cobra.Command, id registry.ID) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if !id.Assigned() {
		return fmt.Errorf("%q is the sentinel and marks uninstrumented elements", id)
	}

	e, ok := cmdCtx.Registry.Describe(id)
	if !ok {
		return fmt.Errorf("registry ID %q not found", id)
	}
	group, position, _ := cmdCtx.Registry.Locate(id)

	desc := output.DescribeOutput{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Group:       group,
		Position:    position,
		Static:      group == "",
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(desc)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, desc.ID.String()))
		r.Println("")
		for _, kv := range describeFields(desc) {
			r.Println(output.FormatKeyValue(kv[0], kv[1]))
		}
	default:
		styles := r.Styles()
		r.Println(idStyle(r, desc.ID))
		for _, kv := range describeFields(desc) {
			r.Printf("  %s %s\n", styles.Muted.Render(strings.ToLower(kv[0])+":"), kv[1])
		}
	}
	return nil
}

// describeFields lists the label/value pairs shown for an ID.
func describeFields(d output.DescribeOutput) [][2]string {
	var fields [][2]string
	if d.Static {
		fields = append(fields, [2]string{"Group", "(static element)"})
	} else {
		fields = append(fields,
			[2]string{"Group", d.Group},
			[2]string{"Position", strconv.Itoa(d.Position)},
		)
	}
	fields = append(fields, [2]string{"Name", d.Name})
	if d.Description != "" {
		fields = append(fields, [2]string{"Description", d.Description})
	}
	return fields
}
