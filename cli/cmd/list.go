package cmd

import (
	"os"

	"github.com/forge-cli/forge/cli/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListCmd shows available templates.
func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalListModule(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.ExactArgs(0),
	}

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"NAME", "DESCRIPTION", "REPOSITORY"})

	for _, template := range reg.List() {
		name := template.Identifier
		if template.OverridesBuiltin {
			name += " (overrides built-in)"
		}
		writer.AppendRow(table.Row{name, template.Description, template.SourceLocation})
	}

	writer.Render()

	return nil
}
