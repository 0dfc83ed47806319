package git

import "context"

// Runner defines the version-control operations consumed by the submitter.
// This allows the submitter to be used with both real git and mock
// implementations.
type Runner interface {
	CurrentBranch(ctx context.Context) (string, error)
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error
	CheckoutBranch(ctx context.Context, branchName string) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	HasUncommittedChanges(ctx context.Context) (bool, error)
	AddRemote(ctx context.Context, name, url string) error
	RemoveRemote(ctx context.Context, name string) error
	Push(ctx context.Context, remote, branchName string) error
}

var _ Runner = (*CommandRunner)(nil)
