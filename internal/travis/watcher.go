// Package travis holds the build-watching extension point and the GitHub
// API surface trytravis talks to.
package travis

import (
	"context"

	trytraviserrors "trytravis.dev/trytravis/internal/errors"
)

// BuildState describes where a CI build is in its lifecycle
type BuildState string

const (
	BuildStateCreated  BuildState = "created"
	BuildStateStarted  BuildState = "started"
	BuildStatePassed   BuildState = "passed"
	BuildStateFailed   BuildState = "failed"
	BuildStateErrored  BuildState = "errored"
	BuildStateCanceled BuildState = "canceled"
)

// Build describes a CI build triggered by a pushed transient branch
type Build struct {
	Slug   string
	Branch string
	URL    string
	State  BuildState
}

// Watcher waits for and streams the CI build triggered by a push.
// The real protocol is an open extension point.
type Watcher interface {
	// Wait blocks until the CI service reports a build for the pushed branch
	Wait(ctx context.Context, slug, branch string) (*Build, error)

	// Watch streams build status until the build completes or ctx is canceled
	Watch(ctx context.Context, build *Build) error
}

// UnsupportedWatcher is the default Watcher. Both operations report a
// NotSupported outcome so callers can tell "not yet built" from "failed".
type UnsupportedWatcher struct{}

// NewUnsupportedWatcher creates the default watcher
func NewUnsupportedWatcher() *UnsupportedWatcher {
	return &UnsupportedWatcher{}
}

// Wait always reports NotSupported
func (w *UnsupportedWatcher) Wait(_ context.Context, _, _ string) (*Build, error) {
	return nil, trytraviserrors.NewNotSupportedError("waiting for CI builds")
}

// Watch always reports NotSupported
func (w *UnsupportedWatcher) Watch(_ context.Context, _ *Build) error {
	return trytraviserrors.NewNotSupportedError("watching CI builds")
}

var _ Watcher = (*UnsupportedWatcher)(nil)
