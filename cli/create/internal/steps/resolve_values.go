package steps

import (
	"fmt"
	"strings"
	"time"

	"github.com/forge-cli/forge/cli/config"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/vcs"
)

// dateLayout is the format of the CurrentDate value.
const dateLayout = "2006-01-02"

// ResolveValues represents the substitution values resolution step.
// All values are computed once up front, before any file is touched.
type ResolveValues struct{}

// Run fills the resolved values: project name from the command line,
// author identity from the configuration defaults or the local git
// identity, current date from the invocation clock and custom values
// from --var definitions.
func (ResolveValues) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	defaults := &config.DefaultsOpts{}
	if createCtx.CliOpts != nil && createCtx.CliOpts.Defaults != nil {
		defaults = createCtx.CliOpts.Defaults
	}

	ident := vcs.ResolveIdentity(defaults.AuthorName, defaults.AuthorEmail)

	scaffoldCtx.Values.ProjectName = createCtx.ProjectName
	scaffoldCtx.Values.AuthorName = ident.Name
	scaffoldCtx.Values.AuthorEmail = ident.Email
	scaffoldCtx.Values.CurrentDate = time.Now().Format(dateLayout)

	for _, definition := range createCtx.VarsFromCli {
		name, value, found := strings.Cut(definition, "=")
		if !found || name == "" {
			return fmt.Errorf("invalid variable definition %q, expected name=value format",
				definition)
		}
		scaffoldCtx.Values.Custom[name] = value
	}

	return nil
}
