// Package submit implements the transient-branch workflow: commit the
// working tree onto a throwaway branch, push it to a throwaway remote,
// and restore the original branch no matter what.
package submit

import (
	"context"
	"fmt"
	"time"

	trytraviserrors "trytravis.dev/trytravis/internal/errors"
	"trytravis.dev/trytravis/internal/git"
	"trytravis.dev/trytravis/internal/output"
	"trytravis.dev/trytravis/internal/travis"
)

const (
	// RemoteName is the name of the transient remote
	RemoteName = "trytravis"

	// CommitMessage is the fixed message used for transient commits
	CommitMessage = "trytravis"

	// DefaultRemoteBase is prepended to the configured slug to build the
	// transient remote URL
	DefaultRemoteBase = "https://github.com"

	branchPrefix = "trytravis-"
)

// SlugStore loads the configured repository slug
type SlugStore interface {
	Load() (string, error)
}

// Options configures a Submitter
type Options struct {
	Runner     git.Runner
	Store      SlugStore
	Splog      *output.Splog
	Watcher    travis.Watcher
	RemoteBase string           // defaults to DefaultRemoteBase
	Now        func() time.Time // defaults to time.Now
}

// Submitter performs a reversible "publish working tree to a remote
// branch" operation.
type Submitter struct {
	runner     git.Runner
	store      SlugStore
	splog      *output.Splog
	watcher    travis.Watcher
	remoteBase string
	now        func() time.Time
}

// session groups the state owned by a single submission attempt
type session struct {
	slug           string
	originalBranch string
	branch         string
	remoteURL      string
}

// New creates a Submitter
func New(opts Options) *Submitter {
	s := &Submitter{
		runner:     opts.Runner,
		store:      opts.Store,
		splog:      opts.Splog,
		watcher:    opts.Watcher,
		remoteBase: opts.RemoteBase,
		now:        opts.Now,
	}
	if s.splog == nil {
		s.splog = output.NewSplog()
	}
	if s.watcher == nil {
		s.watcher = travis.NewUnsupportedWatcher()
	}
	if s.remoteBase == "" {
		s.remoteBase = DefaultRemoteBase
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Submit commits all working-tree changes onto a transient branch, pushes
// it to a transient remote built from the configured slug, then hands off
// to the build watcher. The original branch is restored and the transient
// remote removed on every exit path once the transient branch exists.
func (s *Submitter) Submit(ctx context.Context) error {
	slug, err := s.store.Load()
	if err != nil {
		return err
	}

	originalBranch, err := s.runner.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	hasChanges, err := s.runner.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}
	if !hasChanges {
		return trytraviserrors.ErrNothingToSubmit
	}

	sess := &session{
		slug:           slug,
		originalBranch: originalBranch,
		branch:         fmt.Sprintf("%s%d", branchPrefix, s.now().UnixMilli()),
		remoteURL:      s.remoteBase + slug,
	}

	if err := s.publish(ctx, sess); err != nil {
		return err
	}

	s.splog.Info("Submitted %s to %s", sess.branch, sess.remoteURL)
	s.splog.Info("Your branch %s was restored; the submitted changes are kept on %s.", sess.originalBranch, sess.branch)

	build, err := s.watcher.Wait(ctx, sess.slug, sess.branch)
	if err != nil {
		return err
	}
	return s.watcher.Watch(ctx, build)
}

// publish runs the mutating part of the workflow. Once the transient
// branch exists, cleanup always runs before publish returns.
func (s *Submitter) publish(ctx context.Context, sess *session) (err error) {
	if err := s.runner.CreateAndCheckoutBranch(ctx, sess.branch); err != nil {
		return err
	}

	defer func() {
		cleanupErr := s.cleanup(ctx, sess)
		if err == nil {
			err = cleanupErr
		} else if cleanupErr != nil {
			// Never let cleanup mask the primary error
			s.splog.Warn("cleanup failed: %v", cleanupErr)
		}
	}()

	if err := s.runner.StageAll(ctx); err != nil {
		return err
	}
	if err := s.runner.Commit(ctx, CommitMessage); err != nil {
		return err
	}
	if err := s.runner.AddRemote(ctx, RemoteName, sess.remoteURL); err != nil {
		return err
	}
	return s.runner.Push(ctx, RemoteName, sess.branch)
}

// cleanup removes the transient remote and restores the original branch.
// Remote removal is best effort; only the checkout failure is reported.
// The local transient branch is kept: once the original branch is checked
// out again, its commit is the only copy of the submitted changes.
func (s *Submitter) cleanup(ctx context.Context, sess *session) error {
	if err := s.runner.RemoveRemote(ctx, RemoteName); err != nil {
		s.splog.Debug("failed to remove remote %s: %v", RemoteName, err)
	}

	if err := s.runner.CheckoutBranch(ctx, sess.originalBranch); err != nil {
		return fmt.Errorf("failed to restore branch %s: %w", sess.originalBranch, err)
	}
	return nil
}
