package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/optic/internal/adapters/fs"
	"go.trai.ch/optic/internal/core/domain"
)

func TestFileSystem_Lifecycle(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewFileSystem()

	dir := filepath.Join(root, "a", "b")
	require.NoError(t, fsys.MkdirAll(dir))
	assert.True(t, fsys.Exists(dir))

	file := filepath.Join(dir, "file")
	writeFile(t, file, "x")
	assert.True(t, fsys.Exists(file))

	require.NoError(t, fsys.Remove(file))
	assert.False(t, fsys.Exists(file))

	// Removing a missing file is not an error.
	require.NoError(t, fsys.Remove(file))

	require.NoError(t, fsys.RemoveAll(filepath.Join(root, "a")))
	assert.False(t, fsys.Exists(dir))
}

func TestFileSystem_Remove_NonEmptyDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dir", "file"), "")

	err := fs.NewFileSystem().Remove(filepath.Join(root, "dir"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRemoveFailed.Error())
}

func TestFileSystem_MkdirAll_Conflict(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	err := fs.NewFileSystem().MkdirAll(filepath.Join(file, "sub"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMkdirFailed.Error())
}
