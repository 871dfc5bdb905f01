package cmd

import (
	"fmt"

	"github.com/forge-cli/forge/cli/util"
	"github.com/forge-cli/forge/cli/version"
	"github.com/spf13/cobra"
)

var (
	showShort  bool
	needCommit bool
)

// NewVersionCmd creates a new version command.
func NewVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show Forge CLI version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalVersionModule(args)
			util.HandleCmdErr(cmd, err)
		},
	}

	versionCmd.Flags().BoolVar(&showShort, "short", false, "Show version in short format")
	versionCmd.Flags().BoolVar(&needCommit, "commit", false, "Show commit")

	return versionCmd
}

// internalVersionModule is a default (internal) version module function.
func internalVersionModule(args []string) error {
	fmt.Println(version.GetVersion(showShort, needCommit))
	return nil
}
