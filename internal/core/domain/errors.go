package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no optic.yaml can be found from the working directory upwards.
	ErrConfigNotFound = zerr.New("could not find optic.yaml")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrApplicationNotFound is returned when the requested application is not declared in the project.
	ErrApplicationNotFound = zerr.New("application not found")

	// ErrMissingApplication is returned when no application name is given.
	ErrMissingApplication = zerr.New("missing application name")

	// ErrInvalidApplicationName is returned when an application name contains invalid characters.
	ErrInvalidApplicationName = zerr.New(
		"application name can only contain alphanumeric characters, hyphens and underscores",
	)

	// ErrInvalidEnvironmentName is returned when an environment name contains invalid characters.
	ErrInvalidEnvironmentName = zerr.New(
		"environment name can only contain alphanumeric characters, hyphens and underscores",
	)

	// ErrInvalidPlugin is returned when a plugin entry has neither a name nor a path.
	ErrInvalidPlugin = zerr.New("plugin entry requires a name")

	// ErrDuplicatePlugin is returned when two plugin entries share a name.
	ErrDuplicatePlugin = zerr.New("duplicate plugin name")

	// ErrStaleArtifactRemoveFailed is returned when a previous artifact cannot be removed.
	ErrStaleArtifactRemoveFailed = zerr.New("failed to remove stale artifact")

	// ErrArtifactDirCreateFailed is returned when the artifact directory cannot be created.
	ErrArtifactDirCreateFailed = zerr.New("failed to create artifact directory")

	// ErrArtifactMarshalFailed is returned when the cache table cannot be encoded.
	ErrArtifactMarshalFailed = zerr.New("failed to marshal cache table")

	// ErrArtifactWriteFailed is returned when the artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactReadFailed is returned when the artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read artifact")

	// ErrArtifactUnmarshalFailed is returned when the artifact content is not a valid cache table.
	ErrArtifactUnmarshalFailed = zerr.New("failed to unmarshal artifact")

	// ErrArtifactNotFound is returned when no artifact exists for an application environment.
	ErrArtifactNotFound = zerr.New("artifact not found, run optimize first")

	// ErrSubCacheReadFailed is returned when a module configuration source cannot be read.
	ErrSubCacheReadFailed = zerr.New("failed to read module configuration")

	// ErrSubCacheParseFailed is returned when a module configuration source is not valid YAML.
	ErrSubCacheParseFailed = zerr.New("failed to parse module configuration")

	// ErrSubCacheWriteFailed is returned when a compiled module configuration cannot be written.
	ErrSubCacheWriteFailed = zerr.New("failed to write compiled module configuration")

	// ErrGeneratorThemeNotFound is returned when a generator config names a theme that does not exist.
	ErrGeneratorThemeNotFound = zerr.New("generator theme not found")

	// ErrGeneratorFailed is returned when a generated module cannot be materialized.
	ErrGeneratorFailed = zerr.New("failed to generate module")

	// ErrRemoveFailed is returned when a path cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove path")

	// ErrMkdirFailed is returned when a directory tree cannot be created.
	ErrMkdirFailed = zerr.New("failed to create directory")

	// ErrWatchFailed is returned when the project tree cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch project")
)
