package main

import (
	"errors"
	"os"

	"trytravis.dev/trytravis/internal/cli"
	trytraviserrors "trytravis.dev/trytravis/internal/errors"
	"trytravis.dev/trytravis/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		splog := output.NewSplog()
		if errors.Is(err, trytraviserrors.ErrNotSupported) {
			splog.Info("Your changes were pushed, but watching the build is not built yet.")
		}
		splog.Error("%v", err)
		os.Exit(1)
	}
}
