// Package actions provides the high-level logic behind the trytravis CLI.
//
// Each action corresponds to one command surface (configure, submit) and
// orchestrates operations across the config, git, submit and travis
// packages. Actions accept their collaborators as parameters so they can
// be exercised with fakes in tests.
package actions
