package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/optic/internal/adapters/artifact" //nolint:depguard // Wired in app layer
	"go.trai.ch/optic/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/optic/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/optic/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/optic/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/optic/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.FinderNodeID,
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			artifact.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.Finder](ctx)
	if err != nil {
		return nil, err
	}

	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, finder, fileSystem, store, hasher, w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
