package cmd

import (
	"github.com/forge-cli/forge/cli/configure"
	"github.com/forge-cli/forge/cli/fetcher"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/templatecache"
)

// buildRegistry builds the template registry for the loaded configuration.
func buildRegistry() (*registry.Registry, error) {
	return registry.New(cliOpts.CustomTemplates)
}

// buildCache builds the template cache over the configured cache root.
func buildCache() (*templatecache.Cache, error) {
	cacheRoot, err := configure.CacheDir(cliOpts)
	if err != nil {
		return nil, err
	}

	return templatecache.New(cacheRoot, fetcher.NewGitFetcher()), nil
}
