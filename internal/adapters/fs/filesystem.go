package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path exists. A dangling symlink exists.
func (s *FileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Remove deletes a single file.
func (s *FileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}
	return nil
}

// RemoveAll deletes path and everything beneath it.
func (s *FileSystem) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}
	return nil
}

// MkdirAll creates path and its parents.
func (s *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMkdirFailed.Error()), "path", path)
	}
	return nil
}
