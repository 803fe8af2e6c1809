// Package artifact persists the compiled cache table.
package artifact

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with JSON files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save writes table to path atomically. The process umask is cleared for the duration
// of the write so the artifact ends up world-readable and world-writable, and the
// previous umask is restored on every exit path. The parent directory must exist.
func (s *Store) Save(path string, table *domain.CacheTable) (err error) {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactMarshalFailed.Error())
	}
	data = append(data, '\n')

	restore := setUmask(0)
	defer restore()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	if err = tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	if err = os.Chmod(tmpName, domain.SharedFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	return nil
}

// Load reads the table stored at path.
func (s *Store) Load(path string) (*domain.CacheTable, error) {
	//nolint:gosec // Path is built from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrArtifactNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
	}

	table := domain.NewCacheTable()
	if err := json.Unmarshal(data, table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactUnmarshalFailed.Error()), "path", path)
	}
	return table, nil
}
