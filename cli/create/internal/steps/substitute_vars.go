package steps

import (
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/substitute"
)

// SubstituteVariables represents the placeholder substitution step.
type SubstituteVariables struct{}

// Run rewrites the declared placeholder tokens in the staged project.
func (SubstituteVariables) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	report, err := substitute.Apply(scaffoldCtx.ScaffoldPath, scaffoldCtx.Template,
		scaffoldCtx.Values)
	if err != nil {
		return err
	}

	scaffoldCtx.Report = report

	return nil
}
