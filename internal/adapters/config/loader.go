// Package config provides the project configuration loader for optic.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only optic.yaml schema version understood by this loader.
const supportedVersion = "1"

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads configPath when it is set, otherwise it searches for optic.yaml from cwd upwards.
func (l *Loader) Load(cwd, configPath string) (*domain.Project, error) {
	if configPath == "" {
		found, err := l.findConfiguration(cwd)
		if err != nil {
			return nil, err
		}
		configPath = found
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	var projectfile Projectfile
	if err := readAndUnmarshalYAML(configPath, &projectfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.buildProject(configPath, &projectfile)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildProject(configPath string, projectfile *Projectfile) (*domain.Project, error) {
	if projectfile.Version != "" && projectfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown %s version %q, assuming %q",
			domain.ProjectFileName, projectfile.Version, supportedVersion))
	}

	root := resolvePath(filepath.Dir(configPath), projectfile.Root, ".")

	plugins, err := l.resolvePlugins(root, projectfile)
	if err != nil {
		return nil, err
	}

	applications := make(map[string]domain.Application, len(projectfile.Applications))
	for name, dto := range projectfile.Applications {
		if !domain.ValidateName(name) {
			return nil, zerr.With(domain.ErrInvalidApplicationName, "application", name)
		}
		applications[name] = domain.Application{
			Name:           name,
			EnabledModules: dto.EnabledModules,
		}
	}

	return &domain.Project{
		Root:         root,
		ConfigPath:   configPath,
		CacheDir:     resolvePath(root, projectfile.CacheDir, domain.DefaultCacheDir),
		FrameworkDir: resolvePath(root, projectfile.FrameworkDir, domain.DefaultFrameworkDir),
		HelperSuffix: valueOrDefault(projectfile.HelperSuffix, domain.DefaultHelperSuffix),
		Plugins:      plugins,
		Applications: applications,
	}, nil
}

func (l *Loader) resolvePlugins(root string, projectfile *Projectfile) ([]domain.Plugin, error) {
	pluginsDir := resolvePath(root, projectfile.PluginsDir, domain.DefaultPluginsDir)
	seen := make(map[string]struct{}, len(projectfile.Plugins))
	plugins := make([]domain.Plugin, 0, len(projectfile.Plugins))

	for i, dto := range projectfile.Plugins {
		if !domain.ValidateName(dto.Name) {
			err := zerr.With(domain.ErrInvalidPlugin, "index", i)
			return nil, zerr.With(err, "plugin", dto.Name)
		}
		if _, dup := seen[dto.Name]; dup {
			return nil, zerr.With(domain.ErrDuplicatePlugin, "plugin", dto.Name)
		}
		seen[dto.Name] = struct{}{}

		path := resolvePath(root, dto.Path, "")
		if dto.Path == "" {
			path = filepath.Join(pluginsDir, dto.Name)
		}
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			l.Logger.Warn(fmt.Sprintf("plugin %s has no directory at %s", dto.Name, path))
		}

		plugins = append(plugins, domain.Plugin{Name: dto.Name, Path: path})
	}

	return plugins, nil
}

// resolvePath resolves configured against base, falling back to def when it is empty.
func resolvePath(base, configured, def string) string {
	if configured == "" {
		configured = def
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given explicitly by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
