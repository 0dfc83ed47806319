// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, delete, checkout)
//   - Staging and committing the working tree
//   - Remote management (add, remove, push)
//
// This package should be the only place where direct git commands are executed.
package git
