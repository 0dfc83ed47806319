// Package config provides the persistent configuration for trytravis.
//
// The only configured value is the repository slug, stored as a single
// text file of the form /<owner>/<name>. The file lives under
// ~/.config/trytravis on POSIX systems and <home>/trytravis on Windows.
package config
