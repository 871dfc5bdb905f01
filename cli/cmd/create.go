package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/forge-cli/forge/cli/create"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/util"
	"github.com/forge-cli/forge/cli/vcs"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	dstPath     string
	forceMode   bool
	skipPrompts bool
	varsFromCli *[]string
)

// NewCreateCmd creates a project from a template.
func NewCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <TEMPLATE_NAME> <PROJECT_NAME> [flags]",
		Short: "Create a project from a template",
		Long: `Create a project from a template.

Built-in templates:
	go: Go project template.
	rust: Rust project template.`,
		Example: `
# Create a project app1 from the go template.

    $ forge create go app1

# Create a project in /opt/projects, replacing the directory if it
# exists. User interaction is disabled.

    $ forge create go app1 -f --yes --dst /opt/projects

# Create a project passing a custom template variable.

    $ forge create my-template app1 --var module_path=example.com/app1`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalCreateModule(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.ExactArgs(2),
	}

	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created")
	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		"Force rewrite the project directory if it already exists")
	createCmd.Flags().BoolVarP(&skipPrompts, "yes", "y", false,
		"Skip interactive prompts")
	varsFromCli = createCmd.Flags().StringArray("var", []string{},
		"Custom variable definition. Usage: --var var_name=value")

	return createCmd
}

// internalCreateModule is a default create module.
func internalCreateModule(args []string) error {
	if !vcs.IsGitAvailable() {
		// Identity resolution falls back to configured defaults.
		util.CheckRecommendedBinaries("git")
	}

	createCtx := create_ctx.CreateCtx{
		DestinationDir: dstPath,
		ForceMode:      forceMode,
		VarsFromCli:    *varsFromCli,
	}
	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	var err error
	if createCtx.Registry, err = buildRegistry(); err != nil {
		return err
	}
	if createCtx.Cache, err = buildCache(); err != nil {
		return err
	}

	if !createCtx.ForceMode {
		confirmed, err := confirmOverwrite(&createCtx)
		if err != nil {
			return err
		}
		createCtx.ForceMode = confirmed
	}

	report, err := create.Run(&createCtx)
	if err != nil {
		return err
	}

	printCreateReport(report)

	return nil
}

// confirmOverwrite asks the user to confirm replacing an existing target
// directory. Confirmation requires a terminal and is skipped with --yes.
func confirmOverwrite(createCtx *create_ctx.CreateCtx) (bool, error) {
	targetPath, err := create.TargetPath(createCtx)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(targetPath); err != nil {
		return false, nil
	}
	if skipPrompts || !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, nil
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Directory %s already exists. Replace it", targetPath),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// printCreateReport prints a summary of the created project.
func printCreateReport(report *create.Report) {
	fmt.Printf("%s Project %q created from template %q\n",
		color.GreenString("•"), report.ProjectName, report.TemplateIdentifier)
	fmt.Printf("  Location: %s\n", util.RelativeToCurrentWorkingDir(report.Path))
	for _, file := range report.Substitution.Modified {
		fmt.Printf("  Customized: %s\n", file)
	}
	for _, file := range report.Substitution.Skipped {
		fmt.Printf("  Skipped (not in template): %s\n", file)
	}
}
