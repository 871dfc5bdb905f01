package fetcher

import "fmt"

// NetworkError is returned when the remote cannot be reached.
type NetworkError struct {
	// Source is the repository location being fetched.
	Source string
	// Err is the underlying transport error.
	Err error
}

// Error returns error message.
func (e NetworkError) Error() string {
	return fmt.Sprintf("network is unreachable while fetching %q: %s", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e NetworkError) Unwrap() error {
	return e.Err
}

// AuthRequiredError is returned when the remote requires authentication.
type AuthRequiredError struct {
	// Source is the repository location being fetched.
	Source string
}

// Error returns error message.
func (e AuthRequiredError) Error() string {
	return fmt.Sprintf("authentication is required to fetch %q", e.Source)
}

// RemoteNotFoundError is returned when the remote repository does not exist.
type RemoteNotFoundError struct {
	// Source is the repository location being fetched.
	Source string
}

// Error returns error message.
func (e RemoteNotFoundError) Error() string {
	return fmt.Sprintf("remote repository %q is not found", e.Source)
}

// DestinationNotEmptyError is returned when the clone destination
// already contains entries.
type DestinationNotEmptyError struct {
	// Path is the clone destination.
	Path string
}

// Error returns error message.
func (e DestinationNotEmptyError) Error() string {
	return fmt.Sprintf("clone destination %q already exists and is not empty", e.Path)
}

// FetchError is returned for fetch failures with no more specific kind.
type FetchError struct {
	// Source is the repository location being fetched.
	Source string
	// Err is the underlying error.
	Err error
}

// Error returns error message.
func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %q: %s", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e FetchError) Unwrap() error {
	return e.Err
}
