package ports

import "go.trai.ch/optic/internal/core/domain"

// ArtifactStore persists the compiled cache table.
//
//go:generate mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactStore interface {
	// Save atomically writes table to path with world-readable permissions.
	Save(path string, table *domain.CacheTable) error
	// Load reads a table previously written by Save.
	Load(path string) (*domain.CacheTable, error)
}
