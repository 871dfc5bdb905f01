package steps

import (
	create_ctx "github.com/forge-cli/forge/cli/create/context"
)

// AcquireTemplate represents the template working copy acquisition step.
type AcquireTemplate struct{}

// Run resolves the template to a local working copy, fetching the
// repository on first use.
func (AcquireTemplate) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	cachePath, err := createCtx.Cache.GetOrFetch(scaffoldCtx.Template)
	if err != nil {
		return err
	}

	scaffoldCtx.CachePath = cachePath

	return nil
}
