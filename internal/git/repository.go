package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	trytraviserrors "trytravis.dev/trytravis/internal/errors"
)

// Repository wraps a go-git repository for read-only introspection
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", absPath, err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Path returns the path the repository was opened at
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the current branch name
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", trytraviserrors.ErrNotOnBranch
	}

	return head.Name().Short(), nil
}
