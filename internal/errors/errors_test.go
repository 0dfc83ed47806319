package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	t.Parallel()

	t.Run("NotConfiguredError matches ErrNotConfigured", func(t *testing.T) {
		t.Parallel()
		err := NewNotConfiguredError("/home/user/.config/trytravis/slug")
		require.ErrorIs(t, err, ErrNotConfigured)
		require.Contains(t, err.Error(), "trytravis --repo")
	})

	t.Run("InvalidRepoURLError matches ErrInvalidRepoURL", func(t *testing.T) {
		t.Parallel()
		err := NewInvalidRepoURLError("https://gitlab.com/x/y")
		require.ErrorIs(t, err, ErrInvalidRepoURL)
		require.Contains(t, err.Error(), "https://gitlab.com/x/y")
	})

	t.Run("NotSupportedError matches ErrNotSupported", func(t *testing.T) {
		t.Parallel()
		err := NewNotSupportedError("watching CI builds")
		require.ErrorIs(t, err, ErrNotSupported)
		require.EqualError(t, err, "watching CI builds is not supported yet")
	})

	t.Run("sentinels do not match each other", func(t *testing.T) {
		t.Parallel()
		require.NotErrorIs(t, NewNotSupportedError("x"), ErrNotConfigured)
		require.NotErrorIs(t, NewNotConfiguredError("x"), ErrNotSupported)
	})
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	t.Run("includes command, args and stderr", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("exit status 1")
		err := NewGitCommandError("git", []string{"push", "trytravis", "trytravis-1"}, "", "remote rejected", cause)

		require.Contains(t, err.Error(), "git command failed: git")
		require.Contains(t, err.Error(), "push")
		require.Contains(t, err.Error(), "remote rejected")
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("exit status 128")
		err := NewGitCommandError("git", nil, "", "", cause)
		require.ErrorIs(t, err, cause)
	})
}
