// Package utils provides small shared helpers.
package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive checks if we're attached to an interactive terminal.
// TRYTRAVIS_NON_INTERACTIVE forces non-interactive mode, which tests use
// to keep prompts from blocking.
func IsInteractive() bool {
	if os.Getenv("TRYTRAVIS_NON_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
