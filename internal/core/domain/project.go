package domain

import (
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Plugin is one plugin tree contributing modules, templates and helpers.
type Plugin struct {
	Name string
	Path string
}

// Application is one application of the project.
type Application struct {
	Name           string
	EnabledModules []string
}

// Project is the host project description loaded from optic.yaml.
// All paths are absolute.
type Project struct {
	Root         string
	ConfigPath   string
	CacheDir     string
	FrameworkDir string
	HelperSuffix string
	Plugins      []Plugin
	Applications map[string]Application
}

// ValidateName checks an application or environment name.
func ValidateName(name string) bool {
	return validNameRegex.MatchString(name)
}

// Layout resolves the directory layout of the given application environment.
func (p *Project) Layout(application, environment string) (*Layout, error) {
	if application == "" {
		return nil, ErrMissingApplication
	}
	if !ValidateName(application) {
		return nil, zerr.With(ErrInvalidApplicationName, "application", application)
	}
	if environment == "" {
		environment = DefaultEnvironment
	}
	if !ValidateName(environment) {
		return nil, zerr.With(ErrInvalidEnvironmentName, "environment", environment)
	}

	app, ok := p.Applications[application]
	if !ok {
		return nil, zerr.With(ErrApplicationNotFound, "application", application)
	}

	enabled := app.EnabledModules
	if len(enabled) == 0 {
		enabled = []string{DefaultModule}
	}

	suffix := p.HelperSuffix
	if suffix == "" {
		suffix = DefaultHelperSuffix
	}

	appDir := filepath.Join(p.Root, "apps", application)
	envCache := filepath.Join(p.CacheDir, application, environment)

	plugins := make([]Plugin, len(p.Plugins))
	copy(plugins, p.Plugins)

	return &Layout{
		Root:           p.Root,
		Application:    application,
		Environment:    environment,
		AppDir:         appDir,
		AppModuleDir:   filepath.Join(appDir, "modules"),
		AppLibDir:      filepath.Join(appDir, "lib"),
		ProjectLibDir:  filepath.Join(p.Root, "lib"),
		DataDir:        filepath.Join(p.Root, "data"),
		FrameworkDir:   p.FrameworkDir,
		CacheDir:       p.CacheDir,
		ConfigCacheDir: filepath.Join(envCache, "config"),
		ModuleCacheDir: filepath.Join(envCache, "modules"),
		HelperSuffix:   suffix,
		Plugins:        plugins,
		EnabledModules: append([]string(nil), enabled...),
	}, nil
}
