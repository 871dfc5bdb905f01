// Package templatecache maps template identifiers to local working
// copies of their source repositories. One working copy per identifier
// lives under the cache root; mutation always goes through a temporary
// sibling directory followed by a rename, so readers never observe a
// half-written entry.
package templatecache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/forge-cli/forge/cli/fetcher"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/util"
	"github.com/forge-cli/forge/cli/vcs"
	"github.com/google/uuid"
)

const cacheDirPermissions = 0o755

// tempEntryPrefix prefixes in-progress fetch directories under the cache
// root. The dot keeps them out of the identifier namespace.
const tempEntryPrefix = ".tmp-"

// CorruptError is returned when a cache entry exists but is not a valid
// template working copy.
type CorruptError struct {
	// Identifier of the template.
	Identifier string
	// Path of the corrupt cache entry.
	Path string
}

// Error returns error message.
func (e CorruptError) Error() string {
	return fmt.Sprintf("cache entry for template %q at %q is not a valid repository, "+
		"run `forge update %s` or remove the directory",
		e.Identifier, e.Path, e.Identifier)
}

// Cache is the on-disk template cache.
type Cache struct {
	root    string
	fetcher fetcher.Fetcher
}

// New creates a cache over the root directory using the fetcher for
// remote retrieval.
func New(root string, f fetcher.Fetcher) *Cache {
	return &Cache{root: root, fetcher: f}
}

// EntryPath returns the working copy path of the template.
func (c *Cache) EntryPath(template registry.Template) string {
	return filepath.Join(c.root, template.Identifier)
}

// Cached reports whether a non-empty working copy of the template exists.
func (c *Cache) Cached(template registry.Template) bool {
	entryPath := c.EntryPath(template)
	return util.IsDir(entryPath) && !util.IsDirEmpty(entryPath)
}

// GetOrFetch returns a local working copy path of the template, fetching
// the repository on first use. A present, non-empty entry is returned
// without any network access.
func (c *Cache) GetOrFetch(template registry.Template) (string, error) {
	entryPath := c.EntryPath(template)

	if c.Cached(template) {
		if !util.IsDir(filepath.Join(entryPath, vcs.GitDir)) {
			return "", CorruptError{Identifier: template.Identifier, Path: entryPath}
		}
		log.Debugf("Using cached template at %q", entryPath)
		return entryPath, nil
	}

	log.Infof("Template %q is not cached, fetching %s",
		template.Identifier, template.SourceLocation)
	if err := c.fetch(template); err != nil {
		return "", err
	}

	return entryPath, nil
}

// Update forces a refresh of the template working copy. The previously
// cached copy stays intact and usable if the fetch fails. A not yet
// cached template is simply fetched.
func (c *Cache) Update(template registry.Template) error {
	if !c.Cached(template) {
		return c.fetch(template)
	}

	entryPath := c.EntryPath(template)
	tempPath := c.tempEntryPath(template.Identifier)
	defer os.RemoveAll(tempPath)

	if err := c.cloneTo(template, tempPath); err != nil {
		return err
	}

	// Swap the old entry out only after the new one is complete.
	retiredPath := c.tempEntryPath(template.Identifier)
	if err := os.Rename(entryPath, retiredPath); err != nil {
		return fmt.Errorf("failed to retire old cache entry %q: %w", entryPath, err)
	}
	if err := os.Rename(tempPath, entryPath); err != nil {
		// Put the old entry back, the cache must stay usable.
		if restoreErr := os.Rename(retiredPath, entryPath); restoreErr != nil {
			return fmt.Errorf("failed to promote updated cache entry %q: %s "+
				"(restore failed: %s)", entryPath, err, restoreErr)
		}
		return fmt.Errorf("failed to promote updated cache entry %q: %w", entryPath, err)
	}
	if err := os.RemoveAll(retiredPath); err != nil {
		log.Warnf("Failed to remove retired cache entry %q: %s", retiredPath, err)
	}

	return nil
}

// Invalidate removes the template cache entry. Removing an absent entry
// is not an error.
func (c *Cache) Invalidate(template registry.Template) error {
	return os.RemoveAll(c.EntryPath(template))
}

// RefreshResult is an outcome of refreshing one template.
type RefreshResult struct {
	// Identifier of the template.
	Identifier string
	// Skipped is set when the template had no cache entry to refresh.
	Skipped bool
	// Err is the refresh failure, nil on success.
	Err error
}

// RefreshAllCached refreshes every template that has a cache entry.
// Templates never fetched before are skipped, following the
// at-most-one-fetch-per-use discipline.
func (c *Cache) RefreshAllCached(templates []registry.Template) []RefreshResult {
	results := make([]RefreshResult, 0, len(templates))

	for _, template := range templates {
		if !c.Cached(template) {
			results = append(results, RefreshResult{
				Identifier: template.Identifier,
				Skipped:    true,
			})
			continue
		}
		results = append(results, RefreshResult{
			Identifier: template.Identifier,
			Err:        c.Update(template),
		})
	}

	return results
}

// fetch clones the template repository into a temporary directory under
// the cache root and atomically promotes it to the entry path.
func (c *Cache) fetch(template registry.Template) error {
	entryPath := c.EntryPath(template)
	tempPath := c.tempEntryPath(template.Identifier)
	defer os.RemoveAll(tempPath)

	if err := c.cloneTo(template, tempPath); err != nil {
		return err
	}

	// An empty leftover entry would make the rename fail.
	if util.IsDir(entryPath) && util.IsDirEmpty(entryPath) {
		if err := os.Remove(entryPath); err != nil {
			return fmt.Errorf("failed to remove empty cache entry %q: %w", entryPath, err)
		}
	}

	if err := os.Rename(tempPath, entryPath); err != nil {
		// A concurrent invocation may have promoted its own copy first.
		// That copy is as good as ours: discard the temporary directory.
		if c.Cached(template) {
			return nil
		}
		return fmt.Errorf("failed to promote cache entry %q: %w", entryPath, err)
	}

	log.Infof("Successfully fetched template %q", template.Identifier)

	return nil
}

// cloneTo clones the template repository into path showing fetch progress.
func (c *Cache) cloneTo(template registry.Template, path string) error {
	if err := util.CreateDirectory(c.root, cacheDirPermissions); err != nil {
		return err
	}

	return util.RunWithSpinner(fmt.Sprintf("Fetching template %q", template.Identifier),
		func() error {
			return c.fetcher.Clone(template.SourceLocation, path)
		})
}

// tempEntryPath returns a unique temporary path under the cache root.
func (c *Cache) tempEntryPath(identifier string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return filepath.Join(c.root, tempEntryPrefix+identifier+"-"+suffix)
}
