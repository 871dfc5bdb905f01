// Package create implements the project creation pipeline: template
// lookup, cache acquisition, materialization, variable substitution and
// repository history reset. The stage order is fixed: later stages rely
// on the invariants established by earlier ones.
package create

import (
	"fmt"
	"os"

	"github.com/forge-cli/forge/cli/config"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/create/internal/steps"
	"github.com/forge-cli/forge/cli/substitute"
	"github.com/forge-cli/forge/cli/util"
	"github.com/forge-cli/forge/cli/version"
)

// Report describes a successfully created project.
type Report struct {
	// ProjectName is the name of the created project.
	ProjectName string
	// TemplateIdentifier is the identifier of the used template.
	TemplateIdentifier string
	// Path is the created project directory.
	Path string
	// Substitution is the substitution outcome.
	Substitution substitute.Report
}

// FillCtx fills the create context from command arguments and
// configuration.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) < 2 {
		return util.NewArgError("create requires template name and project name arguments")
	}
	createCtx.TemplateName = args[0]
	createCtx.ProjectName = args[1]
	createCtx.CliOpts = cliOpts

	if createCtx.DestinationDir == "" && cliOpts != nil && cliOpts.Defaults != nil {
		createCtx.DestinationDir = cliOpts.Defaults.Directory
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	return nil
}

// TargetPath returns the final project directory for the context.
func TargetPath(createCtx *create_ctx.CreateCtx) (string, error) {
	return steps.TargetPath(createCtx)
}

// rollbackOnErr removes the temporary staging directory.
func rollbackOnErr(scaffoldCtx *steps.ScaffoldCtx) {
	if scaffoldCtx.ScaffoldPath != "" {
		os.RemoveAll(scaffoldCtx.ScaffoldPath)
	}
	scaffoldCtx.ScaffoldPath = ""
}

// Run creates a project from a template.
func Run(createCtx *create_ctx.CreateCtx) (*Report, error) {
	if err := checkCtx(createCtx); err != nil {
		return nil, util.InternalError("Create context check failed: %s",
			version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.ResolveTemplate{},
		steps.AcquireTemplate{},
		steps.PrepareTarget{},
		steps.ResolveValues{},
		steps.CreateScaffoldDirectory{},
		steps.MaterializeTemplate{},
		steps.SubstituteVariables{},
		steps.ResetHistory{},
		steps.MoveProjectDirectory{},
	}

	scaffoldCtx := steps.NewScaffoldContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &scaffoldCtx); err != nil {
			rollbackOnErr(&scaffoldCtx)
			return nil, err
		}
	}

	return &Report{
		ProjectName:        createCtx.ProjectName,
		TemplateIdentifier: scaffoldCtx.Template.Identifier,
		Path:               scaffoldCtx.TargetPath,
		Substitution:       scaffoldCtx.Report,
	}, nil
}

// checkCtx checks the create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}
	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name is missing")
	}
	if createCtx.Registry == nil || createCtx.Cache == nil {
		return fmt.Errorf("registry and cache must be initialized")
	}

	return nil
}
