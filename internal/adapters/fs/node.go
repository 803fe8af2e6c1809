package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/optic/internal/core/ports"
)

const (
	// FinderNodeID is the unique identifier for the Finder Graft node.
	FinderNodeID graft.ID = "adapter.fs.finder"
	// FileSystemNodeID is the unique identifier for the FileSystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// HasherNodeID is the unique identifier for the Hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Finder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Finder, error) {
			return NewFinder(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
