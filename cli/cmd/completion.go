package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/forge-cli/forge/cli/util"
	"github.com/spf13/cobra"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalCompletionCmd(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(forge completion bash)`,
	}

	return cmd
}

// internalCompletionCmd is a default (internal) completion module function.
func internalCompletionCmd(args []string) error {
	switch shell := args[0]; shell {
	case shellBash:
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	case shellZsh:
		return rootCmd.GenZshCompletion(os.Stdout)
	case shellFish:
		return rootCmd.GenFishCompletion(os.Stdout, true)
	default:
		return fmt.Errorf("specified shell type is not supported. Available: %s", listShells())
	}
}
