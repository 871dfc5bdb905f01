package cmd

import (
	"fmt"

	"github.com/apex/log"
	retry "github.com/avast/retry-go"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/templatecache"
	"github.com/forge-cli/forge/cli/util"
	"github.com/spf13/cobra"
)

var updateRetries uint

// NewUpdateCmd updates cached templates.
func NewUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update [TEMPLATE_NAME]",
		Short: "Update cached templates",
		Long: `Update cached templates.

Without arguments every template that has a cache entry is refreshed.
With a template name argument that single template is refreshed,
fetching it for the first time if needed.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalUpdateModule(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.MaximumNArgs(1),
	}

	updateCmd.Flags().UintVar(&updateRetries, "retries", 1,
		"Number of fetch attempts when updating a single template")

	return updateCmd
}

// internalUpdateModule is a default update module.
func internalUpdateModule(args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	cache, err := buildCache()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		template, err := reg.Resolve(args[0])
		if err != nil {
			return err
		}
		if err := updateTemplate(cache, template); err != nil {
			return err
		}
		log.Infof("Template %q is up to date", template.Identifier)
		return nil
	}

	updated := 0
	failed := 0
	for _, result := range cache.RefreshAllCached(reg.List()) {
		switch {
		case result.Skipped:
			log.Debugf("Template %q is not cached, skipping", result.Identifier)
		case result.Err != nil:
			log.Errorf("Failed to update template %q: %s", result.Identifier, result.Err)
			failed++
		default:
			log.Infof("Updated template %q", result.Identifier)
			updated++
		}
	}

	if updated == 0 && failed == 0 {
		log.Infof("No cached templates found. Use `forge create` to fetch one first.")
		return nil
	}
	if failed > 0 {
		return fmt.Errorf("failed to update %d of %d cached template(s)",
			failed, updated+failed)
	}

	log.Infof("Successfully updated %d cached template(s)", updated)

	return nil
}

// updateTemplate refreshes one template cache entry. The fetcher performs
// a single attempt: the retry policy lives here, at the caller layer.
func updateTemplate(cache *templatecache.Cache, template registry.Template) error {
	attempts := updateRetries
	if attempts == 0 {
		attempts = 1
	}

	return retry.Do(
		func() error {
			return cache.Update(template)
		},
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
	)
}
