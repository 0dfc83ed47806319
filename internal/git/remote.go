package git

import (
	"context"
	"fmt"
	"strings"
)

// AddRemote adds a named remote pointing at the given URL. Creation is
// idempotent: if a remote of that name already exists it is left as-is.
func (r *CommandRunner) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.Run(ctx, "remote", "add", name, url)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoveRemote removes a named remote
func (r *CommandRunner) RemoveRemote(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "remote", "remove", name)
	if err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}

// Push pushes a branch to the named remote
func (r *CommandRunner) Push(ctx context.Context, remote, branchName string) error {
	_, err := r.Run(ctx, "push", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
	}
	return nil
}
