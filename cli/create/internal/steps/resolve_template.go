package steps

import (
	"github.com/apex/log"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
)

// ResolveTemplate represents the template lookup step.
type ResolveTemplate struct{}

// Run resolves the requested template identifier in the registry.
func (ResolveTemplate) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	template, err := createCtx.Registry.Resolve(createCtx.TemplateName)
	if err != nil {
		return err
	}

	log.Debugf("Using template %q (%s)", template.Identifier, template.SourceLocation)
	scaffoldCtx.Template = template

	return nil
}
