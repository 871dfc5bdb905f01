package create_ctx

import (
	"github.com/forge-cli/forge/cli/config"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/templatecache"
)

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// ProjectName is the name of the project to create.
	ProjectName string
	// TemplateName is the identifier of the template to use.
	TemplateName string
	// WorkDir is the forge launch working directory.
	WorkDir string
	// DestinationDir is the parent directory the project is created in.
	DestinationDir string
	// ForceMode - if flag is set, replace an existing project directory.
	ForceMode bool
	// VarsFromCli holds custom variable definitions provided in the
	// command line, in name=value form.
	VarsFromCli []string
	// CliOpts is the loaded forge configuration.
	CliOpts *config.CliOpts
	// Registry is the merged template set.
	Registry *registry.Registry
	// Cache is the template cache.
	Cache *templatecache.Cache
}
