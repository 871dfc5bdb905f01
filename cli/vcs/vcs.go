// Package vcs covers version control concerns of created projects:
// author identity resolution and fresh history initialization.
package vcs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/forge-cli/forge/cli/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitDir is the git metadata directory name.
const GitDir = ".git"

// MetadataDirs lists version control metadata directories that are never
// copied into created projects.
var MetadataDirs = []string{GitDir, ".hg", ".svn"}

// Fallback identity used for the initial commit when no identity
// could be resolved.
const (
	fallbackAuthorName  = "forge"
	fallbackAuthorEmail = "forge@localhost"
)

// Identity is an author identity used for substitutions and commits.
type Identity struct {
	Name  string
	Email string
}

// ResolveIdentity resolves the author identity. Configured defaults win,
// then the local git identity configuration. Both parts may stay empty.
func ResolveIdentity(defaultName string, defaultEmail string) Identity {
	ident := Identity{Name: defaultName, Email: defaultEmail}

	if ident.Name == "" {
		if name, err := util.RunCommandAndGetOutput("git", "config", "user.name"); err == nil {
			ident.Name = name
		}
	}
	if ident.Email == "" {
		if email, err := util.RunCommandAndGetOutput("git", "config", "user.email"); err == nil {
			ident.Email = email
		}
	}

	return ident
}

// IsGitAvailable reports whether the git binary is available.
// Fetching and history reset work without it; it is only consulted
// for identity resolution.
func IsGitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// ResetHistory discards any version control history inherited by the
// directory and creates a brand-new repository there with a single
// initial commit. Tolerates absent metadata directories.
func ResetHistory(dir string, ident Identity, message string) error {
	for _, metadataDir := range MetadataDirs {
		inherited := filepath.Join(dir, metadataDir)
		if err := os.RemoveAll(inherited); err != nil {
			return fmt.Errorf("failed to remove inherited %s directory: %w", metadataDir, err)
		}
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("failed to initialize repository in %q: %w", dir, err)
	}

	workTree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open work tree of %q: %w", dir, err)
	}

	if err := workTree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage project files: %w", err)
	}

	if ident.Name == "" {
		ident.Name = fallbackAuthorName
	}
	if ident.Email == "" {
		ident.Email = fallbackAuthorEmail
	}

	if _, err := workTree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  ident.Name,
			Email: ident.Email,
			When:  time.Now(),
		},
	}); err != nil {
		return fmt.Errorf("failed to create the initial commit: %w", err)
	}

	log.Debugf("Initialized a fresh repository in %q", dir)

	return nil
}
