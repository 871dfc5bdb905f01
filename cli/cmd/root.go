package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/forge-cli/forge/cli/cmdcontext"
	"github.com/forge-cli/forge/cli/config"
	"github.com/forge-cli/forge/cli/configure"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Forge CLI",
		Long:  "Utility for creating projects from remote template repositories",
		Example: `$ forge create go my-project
  $ forge list
  $ forge update`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
			if err != nil {
				return err
			}
			if cmdCtx.Cli.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose logging")

	rootCmd.AddCommand(
		NewCreateCmd(),
		NewListCmd(),
		NewUpdateCmd(),
		NewVersionCmd(),
		NewCompletionCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes the root command.
func InitRoot() {
	rootCmd = NewCmdRoot()
}
