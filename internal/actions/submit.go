package actions

import (
	"context"
	"errors"

	"trytravis.dev/trytravis/internal/config"
	trytraviserrors "trytravis.dev/trytravis/internal/errors"
	"trytravis.dev/trytravis/internal/git"
	"trytravis.dev/trytravis/internal/output"
	"trytravis.dev/trytravis/internal/submit"
)

// Submit runs the transient-branch workflow against the repository at path
func Submit(ctx context.Context, store *config.Store, splog *output.Splog, path string) error {
	// Validate that path is inside a git work tree before mutating anything
	repo, err := git.OpenRepository(path)
	if err != nil {
		return err
	}

	submitter := submit.New(submit.Options{
		Runner: git.NewCommandRunner(repo.Path()),
		Store:  store,
		Splog:  splog,
	})

	err = submitter.Submit(ctx)
	if errors.Is(err, trytraviserrors.ErrNothingToSubmit) {
		splog.Info("Working tree is clean, nothing to submit.")
		return nil
	}
	return err
}
