package travis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	trytraviserrors "trytravis.dev/trytravis/internal/errors"
)

func TestUnsupportedWatcher(t *testing.T) {
	t.Parallel()

	t.Run("Wait reports NotSupported", func(t *testing.T) {
		t.Parallel()
		watcher := NewUnsupportedWatcher()

		build, err := watcher.Wait(context.Background(), "/octocat/hello-world", "trytravis-1234")
		require.Nil(t, build)
		require.ErrorIs(t, err, trytraviserrors.ErrNotSupported)
	})

	t.Run("Watch reports NotSupported", func(t *testing.T) {
		t.Parallel()
		watcher := NewUnsupportedWatcher()

		err := watcher.Watch(context.Background(), &Build{Slug: "/octocat/hello-world"})
		require.ErrorIs(t, err, trytraviserrors.ErrNotSupported)
	})

	t.Run("NotSupported is distinguishable from failure", func(t *testing.T) {
		t.Parallel()
		watcher := NewUnsupportedWatcher()

		_, err := watcher.Wait(context.Background(), "", "")
		require.NotErrorIs(t, err, trytraviserrors.ErrNotConfigured)
		require.Contains(t, err.Error(), "not supported yet")
	})
}
