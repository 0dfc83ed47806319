// Package errors provides sentinel errors and custom error types for trytravis.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotConfigured indicates that no target repository has been configured
	ErrNotConfigured = errors.New("repository not configured")

	// ErrInvalidRepoURL indicates that a repository URL failed validation
	ErrInvalidRepoURL = errors.New("invalid repository URL")

	// ErrAborted indicates that the user declined a confirmation prompt
	ErrAborted = errors.New("operation aborted by user")

	// ErrNothingToSubmit indicates that the working tree has no changes
	ErrNothingToSubmit = errors.New("nothing to submit")

	// ErrNotSupported indicates functionality that has not been built yet
	ErrNotSupported = errors.New("not supported")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")
)

// NotConfiguredError is returned when the slug file is missing or unreadable
type NotConfiguredError struct {
	Path string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("could not find your repository (looked in %s). Have you run `trytravis --repo`?", e.Path)
}

// Is returns true if the target error is ErrNotConfigured
func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}

// NewNotConfiguredError creates a new NotConfiguredError
func NewNotConfiguredError(path string) *NotConfiguredError {
	return &NotConfiguredError{Path: path}
}

// InvalidRepoURLError is returned when a URL does not look like a GitHub repository
type InvalidRepoURLError struct {
	URL string
}

func (e *InvalidRepoURLError) Error() string {
	return fmt.Sprintf("%q doesn't look like a valid GitHub URL. We expect something of the form `https://github.com/[USERNAME]/[REPOSITORY]`", e.URL)
}

// Is returns true if the target error is ErrInvalidRepoURL
func (e *InvalidRepoURLError) Is(target error) bool {
	return target == ErrInvalidRepoURL
}

// NewInvalidRepoURLError creates a new InvalidRepoURLError
func NewInvalidRepoURLError(url string) *InvalidRepoURLError {
	return &InvalidRepoURLError{URL: url}
}

// NotSupportedError is returned for capabilities that are an extension point
// rather than a runtime failure. Callers can distinguish "not yet built"
// from "failed" via errors.Is(err, ErrNotSupported).
type NotSupportedError struct {
	Capability string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported yet", e.Capability)
}

// Is returns true if the target error is ErrNotSupported
func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported
}

// NewNotSupportedError creates a new NotSupportedError
func NewNotSupportedError(capability string) *NotSupportedError {
	return &NotSupportedError{Capability: capability}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
