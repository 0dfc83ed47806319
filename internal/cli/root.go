// Package cli defines the trytravis command surface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"trytravis.dev/trytravis/internal/actions"
	"trytravis.dev/trytravis/internal/config"
	"trytravis.dev/trytravis/internal/output"
)

// NewRootCmd creates the root cobra command. Running with no arguments
// submits the current working directory; --repo configures the target
// repository.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		configureRepo bool
		assumeYes     bool
	)

	rootCmd := &cobra.Command{
		Use:   "trytravis [URL]",
		Short: "Send your local git repo changes to Travis CI without needless commits and pushes",
		Long: `trytravis commits your uncommitted changes onto a throwaway branch,
pushes that branch to a throwaway remote pointing at your configured
repository, and restores your original branch afterwards. Your working
branch never gains a permanent commit.

Run with no arguments to submit the current directory. Run --repo once
beforehand to tell trytravis which repository to push to.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s, %s/%s)", version, commit, date, runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewDefaultStore()
			if err != nil {
				return err
			}

			splog := newSplog(store)
			defer splog.Close()

			if configureRepo {
				url := ""
				if len(args) > 0 {
					url = args[0]
				}
				return actions.Configure(cmd.Context(), store, splog, url, assumeYes)
			}

			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q, did you mean --repo %s?", args[0], args[0])
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return actions.Submit(cmd.Context(), store, splog, cwd)
		},
	}

	rootCmd.Flags().BoolVarP(&configureRepo, "repo", "r", false, "Configure the repository trytravis pushes to")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt when configuring")

	return rootCmd
}

// newSplog builds the logger, with a rotating debug log next to the slug
// file when the config directory is known.
func newSplog(store *config.Store) *output.Splog {
	splog, err := output.NewSplogWithLogFile(filepath.Join(store.Dir(), "trytravis.log"))
	if err != nil {
		return output.NewSplog()
	}
	return splog
}
