// Package app implements the application layer for optic.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/optic/internal/adapters/configcache"
	"go.trai.ch/optic/internal/adapters/project"
	"go.trai.ch/optic/internal/adapters/telemetry"
	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/optic/internal/engine/optimizer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ProjectLoader
	logger  ports.Logger
	finder  ports.Finder
	fs      ports.FileSystem
	store   ports.ArtifactStore
	hasher  ports.Hasher
	watcher ports.Watcher
	workDir string
	logFile string
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	log ports.Logger,
	finder ports.Finder,
	fs ports.FileSystem,
	store ports.ArtifactStore,
	hasher ports.Hasher,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		logger:  log,
		finder:  finder,
		fs:      fs,
		store:   store,
		hasher:  hasher,
		watcher: watcher,
	}
}

// WithWorkDir sets the directory the project file is searched from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// logSettings is implemented by loggers that can switch format and tee to a file.
type logSettings interface {
	SetJSON(enable bool)
	SetLogFile(path string) error
}

// ConfigureLogging switches the logger to JSON output and opens the debug log file
// when requested. A directory receives domain.DebugLogFile. Loggers without these
// capabilities are left untouched.
func (a *App) ConfigureLogging(json bool, logFile string) error {
	settings, ok := a.logger.(logSettings)
	if !ok {
		return nil
	}
	settings.SetJSON(json)
	if logFile == "" {
		return nil
	}

	path, err := resolveLogFile(logFile)
	if err != nil {
		return err
	}
	if err := settings.SetLogFile(path); err != nil {
		return err
	}
	a.logFile = path
	return nil
}

func resolveLogFile(logFile string) (string, error) {
	path, err := filepath.Abs(logFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve log file"), "path", logFile)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, domain.DebugLogFile)
	}
	return path, nil
}

// TargetOptions selects the application environment a command works on.
type TargetOptions struct {
	Application string
	Environment string
	// ConfigPath overrides the project file discovery.
	ConfigPath string
	// CacheDir overrides the cache directory of the project file.
	CacheDir string
}

// OptimizeOptions configuration for the Optimize method.
type OptimizeOptions struct {
	TargetOptions
	Verbose bool
}

// Optimize compiles the resource lookup artifact of an application environment.
func (a *App) Optimize(ctx context.Context, opts OptimizeOptions) error {
	layout, err := a.resolve(opts.TargetOptions)
	if err != nil {
		return err
	}

	_, err = a.optimize(ctx, layout, opts.Verbose)
	return err
}

// ClearOptions configuration for the Clear method.
type ClearOptions struct {
	TargetOptions
}

// Clear removes the artifact and the compiled configuration and module caches of
// an application environment.
func (a *App) Clear(_ context.Context, opts ClearOptions) error {
	layout, err := a.resolve(opts.TargetOptions)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path, name string) {
		if !a.fs.Exists(path) {
			return
		}
		if err := a.fs.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s %s", name, path))
	}

	remove(layout.ConfigCacheDir, "configuration cache")
	remove(layout.ModuleCacheDir, "module cache")

	return errs
}

// resolve loads the project file and resolves the layout of the requested
// application environment.
func (a *App) resolve(opts TargetOptions) (*domain.Layout, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve working directory")
		}
		cwd = wd
	}

	p, err := a.loader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.CacheDir != "" {
		p.CacheDir = opts.CacheDir
		if !filepath.IsAbs(p.CacheDir) {
			p.CacheDir = filepath.Join(cwd, p.CacheDir)
		}
	}

	return p.Layout(opts.Application, opts.Environment)
}

// optimize runs one optimization batch with a fresh configuration and tracer.
func (a *App) optimize(ctx context.Context, layout *domain.Layout, verbose bool) (*domain.CacheTable, error) {
	tracer, shutdown := a.newTracer(verbose)
	defer shutdown()

	opt := optimizer.New(a.finder, a.fs, a.store, a.logger, tracer)
	return opt.Run(ctx, optimizer.Request{
		Config: project.NewConfiguration(layout),
		Cache:  configcache.New(layout, a.hasher),
		Target: layout.ArtifactPath(),
	})
}

func (a *App) newTracer(verbose bool) (ports.Tracer, func()) {
	if !verbose {
		return telemetry.NewNoOpTracer(), func() {}
	}
	tracer := telemetry.NewOTelTracer("optic", telemetry.NewPhaseLogger(a.logger))
	return tracer, func() {
		_ = tracer.Shutdown(context.Background())
	}
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Close releases resources held by the components.
func (c *Components) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
