package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"trytravis.dev/trytravis/internal/git"
	"trytravis.dev/trytravis/testhelpers"
)

func TestCurrentBranch(t *testing.T) {
	t.Run("returns the checked-out branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		branch, err := runner.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})
}

func TestBranchOps(t *testing.T) {
	t.Run("create, checkout and switch back", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "scratch"))

		branch, err := runner.CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "scratch", branch)

		require.NoError(t, runner.CheckoutBranch(ctx, "main"))

		branches, err := scene.Repo.BranchNames()
		require.NoError(t, err)
		require.Contains(t, branches, "scratch")
		require.Contains(t, branches, "main")
	})

	t.Run("checkout of a missing branch fails", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		err := runner.CheckoutBranch(context.Background(), "does-not-exist")
		require.Error(t, err)
	})
}

func TestStagingAndCommit(t *testing.T) {
	t.Run("stages untracked files and commits them", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, scene.Repo.CreateChange("changed", "work"))

		hasChanges, err := runner.HasUncommittedChanges(ctx)
		require.NoError(t, err)
		require.True(t, hasChanges)

		require.NoError(t, runner.StageAll(ctx))
		require.NoError(t, runner.Commit(ctx, "trytravis"))

		hasChanges, err = runner.HasUncommittedChanges(ctx)
		require.NoError(t, err)
		require.False(t, hasChanges)

		count, err := scene.Repo.CommitCount("HEAD")
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("reports a clean working tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		hasChanges, err := runner.HasUncommittedChanges(context.Background())
		require.NoError(t, err)
		require.False(t, hasChanges)
	})
}

func TestRemotes(t *testing.T) {
	t.Run("add remote is idempotent", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, runner.AddRemote(ctx, "trytravis", "https://github.com/octocat/hello-world"))
		require.NoError(t, runner.AddRemote(ctx, "trytravis", "https://github.com/octocat/hello-world"))

		remotes, err := scene.Repo.Remotes()
		require.NoError(t, err)
		require.Equal(t, []string{"trytravis"}, remotes)
	})

	t.Run("remove remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, runner.AddRemote(ctx, "trytravis", "https://github.com/octocat/hello-world"))
		require.NoError(t, runner.RemoveRemote(ctx, "trytravis"))

		remotes, err := scene.Repo.Remotes()
		require.NoError(t, err)
		require.Empty(t, remotes)
	})

	t.Run("removing a missing remote fails", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		err := runner.RemoveRemote(context.Background(), "trytravis")
		require.Error(t, err)
	})

	t.Run("pushes a branch to a local bare remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		barePath := filepath.Join(t.TempDir(), "remote.git")
		require.NoError(t, testhelpers.CreateBareRepo(barePath))

		require.NoError(t, runner.AddRemote(ctx, "trytravis", barePath))
		require.NoError(t, runner.Push(ctx, "trytravis", "main"))

		bare := &testhelpers.GitRepo{Dir: barePath}
		heads, err := bare.RunGitCommandAndGetOutput("for-each-ref", "--format=%(refname:short)", "refs/heads")
		require.NoError(t, err)
		require.Equal(t, "main", heads)
	})

	t.Run("push to an unreachable remote fails", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, runner.AddRemote(ctx, "trytravis", filepath.Join(t.TempDir(), "missing.git")))

		err := runner.Push(ctx, "trytravis", "main")
		require.Error(t, err)
	})
}

func TestOpenRepository(t *testing.T) {
	t.Run("opens a work tree and reads the active branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("fails outside a git repository", func(t *testing.T) {
		_, err := git.OpenRepository(t.TempDir())
		require.Error(t, err)
	})
}
