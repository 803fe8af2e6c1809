// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/optic/internal/adapters/artifact"
	_ "go.trai.ch/optic/internal/adapters/config"
	_ "go.trai.ch/optic/internal/adapters/fs"
	_ "go.trai.ch/optic/internal/adapters/logger"
	_ "go.trai.ch/optic/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/optic/internal/app"
)
