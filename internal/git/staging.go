package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func (r *CommandRunner) StageAll(ctx context.Context) error {
	_, err := r.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// HasUncommittedChanges reports whether the working tree has any staged,
// unstaged or untracked changes.
func (r *CommandRunner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check working tree status: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
