package ports

import (
	"iter"

	"go.trai.ch/optic/internal/core/domain"
)

// Finder enumerates entries beneath a prioritized list of roots.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Finder interface {
	// Find yields matches root by root in the given order. Missing or unreadable
	// roots yield nothing.
	Find(roots []string, query domain.FindQuery) iter.Seq[domain.Match]
}

// FileSystem mutates the filesystem.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// Remove deletes a single file. A missing file is not an error.
	Remove(path string) error
	// RemoveAll deletes path and everything beneath it.
	RemoveAll(path string) error
	// MkdirAll creates path and its parents.
	MkdirAll(path string) error
}
