package ports

import "context"

// ConfigCache compiles configuration sources into cached files.
//
//go:generate mockgen -source=config_cache.go -destination=mocks/mock_config_cache.go -package=mocks
type ConfigCache interface {
	// CacheName returns the compiled file path of a logical source.
	CacheName(source string) string
	// CheckConfig compiles source if needed, or always when force is set.
	// It returns the compiled path, or "" when no source file exists.
	CheckConfig(ctx context.Context, source string, force bool) (string, error)
	// Import runs the generator described by source.
	Import(ctx context.Context, source string, force bool) error
}
