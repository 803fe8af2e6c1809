package ports

import "go.trai.ch/optic/internal/core/domain"

// ProjectLoader defines the interface for loading the project description.
//
//go:generate mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads configPath when it is set, otherwise it searches for optic.yaml
	// from cwd upwards.
	Load(cwd, configPath string) (*domain.Project, error)
}
