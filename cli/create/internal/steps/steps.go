// Package steps provides a set of handlers for the create command chain
// of responsibility.
package steps

import (
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/substitute"
)

// Step is an interface for a single step in the create chain.
type Step interface {
	Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error
}

// ScaffoldCtx is the state shared by create steps.
type ScaffoldCtx struct {
	// Template is the resolved template.
	Template registry.Template
	// CachePath is the local working copy path of the template.
	CachePath string
	// ScaffoldPath is the temporary directory the project is staged in.
	ScaffoldPath string
	// TargetPath is the final project directory.
	TargetPath string
	// Values are the resolved substitution values.
	Values substitute.Values
	// Report is the substitution outcome.
	Report substitute.Report
}

// NewScaffoldContext creates an empty scaffold context.
func NewScaffoldContext() ScaffoldCtx {
	return ScaffoldCtx{
		Values: substitute.Values{Custom: map[string]string{}},
	}
}
