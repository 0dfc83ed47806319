package actions

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"trytravis.dev/trytravis/internal/config"
	trytraviserrors "trytravis.dev/trytravis/internal/errors"
	"trytravis.dev/trytravis/internal/output"
	"trytravis.dev/trytravis/internal/travis"
	"trytravis.dev/trytravis/internal/utils"
)

// Configure validates a GitHub repository URL, confirms the choice with
// the user and persists the slug. An empty url prompts for one. Nothing
// is written when validation fails or the user declines.
func Configure(ctx context.Context, store *config.Store, splog *output.Splog, url string, assumeYes bool) error {
	if url == "" {
		if !utils.IsInteractive() {
			return fmt.Errorf("no repository URL given: %w", trytraviserrors.ErrInvalidRepoURL)
		}
		prompt := &survey.Input{
			Message: "Input the URL of the GitHub repository to use as a trytravis repository:",
		}
		if err := survey.AskOne(prompt, &url); err != nil {
			return trytraviserrors.ErrAborted
		}
	}

	owner, name, err := config.ParseRepoURL(url)
	if err != nil {
		return err
	}

	if found, err := travis.VerifyRepository(ctx, owner, name); err != nil {
		return err
	} else if found {
		splog.Debug("verified %s/%s exists on GitHub", owner, name)
	}

	if !assumeYes {
		if !utils.IsInteractive() {
			return fmt.Errorf("confirmation required, re-run with --yes: %w", trytraviserrors.ErrAborted)
		}
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Remember that trytravis will make commits on your behalf to https://github.com/%s/%s. Are you sure you wish to use this repository?", owner, name),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
			return trytraviserrors.ErrAborted
		}
	}

	if err := store.Save(owner, name); err != nil {
		return err
	}

	splog.Info("Repository saved successfully.")
	return nil
}
