package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	trytraviserrors "trytravis.dev/trytravis/internal/errors"
)

// slugFileName is the name of the file holding the configured repository slug
const slugFileName = "slug"

// repoURLPattern matches HTTPS GitHub repository URLs
var repoURLPattern = regexp.MustCompile(`^https://(?:www\.)?github\.com/([^/]+)/([^/]+)$`)

// Store reads and writes the configured repository slug. The directory is
// resolved once at startup and carried explicitly rather than held in
// package-level state.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-platform configuration directory:
// <home>/trytravis on Windows, <home>/.config/trytravis elsewhere.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	if runtime.GOOS == "windows" {
		return filepath.Join(home, "trytravis"), nil
	}
	return filepath.Join(home, ".config", "trytravis"), nil
}

// NewDefaultStore creates a Store at the per-platform default directory
func NewDefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir), nil
}

// Dir returns the directory backing this store
func (s *Store) Dir() string {
	return s.dir
}

// slugPath returns the path of the slug file
func (s *Store) slugPath() string {
	return filepath.Join(s.dir, slugFileName)
}

// Load reads the configured repository slug. Returns a NotConfiguredError
// when the slug file is absent or unreadable.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.slugPath())
	if err != nil {
		return "", trytraviserrors.NewNotConfiguredError(s.slugPath())
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the slug for the given owner and repository name,
// creating the configuration directory if needed.
func (s *Store) Save(owner, name string) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	slug := fmt.Sprintf("/%s/%s", owner, name)
	if err := os.WriteFile(s.slugPath(), []byte(slug), 0600); err != nil {
		return fmt.Errorf("failed to write slug file: %w", err)
	}
	return nil
}

// ParseRepoURL validates a GitHub repository URL and extracts its
// owner and repository name. Returns an InvalidRepoURLError for
// anything that is not an HTTPS GitHub URL.
func ParseRepoURL(url string) (owner, name string, err error) {
	match := repoURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if match == nil {
		return "", "", trytraviserrors.NewInvalidRepoURLError(url)
	}
	return match[1], match[2], nil
}
