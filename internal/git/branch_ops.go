package git

import (
	"context"
	"fmt"
)

// CurrentBranch returns the name of the currently checked-out branch
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	output, err := r.Run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to read current branch: %w", err)
	}
	return output, nil
}

// CreateAndCheckoutBranch creates and checks out a new branch
func (r *CommandRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func (r *CommandRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}
