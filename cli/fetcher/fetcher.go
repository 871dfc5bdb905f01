// Package fetcher retrieves template repositories from their remotes.
// It performs exactly one attempt per call: retry policy belongs to
// the caller.
package fetcher

import (
	"errors"
	"fmt"
	"net"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// Fetcher retrieves and updates template repository working copies.
type Fetcher interface {
	// Clone clones the repository at source into destinationPath.
	Clone(source string, destinationPath string) error
	// Pull updates an existing working copy at existingPath.
	Pull(existingPath string) error
}

// GitFetcher fetches repositories over git.
type GitFetcher struct{}

// NewGitFetcher creates a new git fetcher.
func NewGitFetcher() *GitFetcher {
	return &GitFetcher{}
}

// Clone clones the repository at source into destinationPath.
// The destination must be absent or an empty directory.
func (f *GitFetcher) Clone(source string, destinationPath string) error {
	if entries, err := os.ReadDir(destinationPath); err == nil && len(entries) > 0 {
		return DestinationNotEmptyError{Path: destinationPath}
	}

	if _, err := git.PlainClone(destinationPath, false, &git.CloneOptions{
		URL: source,
	}); err != nil {
		return classifyError(source, err)
	}

	return nil
}

// Pull updates an existing working copy at existingPath.
// An already up to date copy is a success.
func (f *GitFetcher) Pull(existingPath string) error {
	repo, err := git.PlainOpen(existingPath)
	if err != nil {
		return fmt.Errorf("%q is not a git working copy: %w", existingPath, err)
	}

	workTree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open work tree of %q: %w", existingPath, err)
	}

	err = workTree.Pull(&git.PullOptions{RemoteName: git.DefaultRemoteName})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return classifyError(existingPath, err)
	}

	return nil
}

// classifyError maps transport failures to the error kinds callers
// distinguish: unreachable network, required authentication and
// missing remote.
func classifyError(source string, err error) error {
	switch {
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return RemoteNotFoundError{Source: source}
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return AuthRequiredError{Source: source}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NetworkError{Source: source, Err: err}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NetworkError{Source: source, Err: err}
	}

	return FetchError{Source: source, Err: err}
}
