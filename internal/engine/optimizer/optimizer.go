// Package optimizer precomputes the resource lookup table of one application environment.
package optimizer

import (
	"context"
	"path/filepath"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Optimizer runs the sequential optimization batch.
type Optimizer struct {
	finder ports.Finder
	fs     ports.FileSystem
	store  ports.ArtifactStore
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new Optimizer.
func New(
	finder ports.Finder,
	fs ports.FileSystem,
	store ports.ArtifactStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Optimizer {
	return &Optimizer{
		finder: finder,
		fs:     fs,
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// Request describes one optimization run.
type Request struct {
	// Config answers directory-convention questions. It must not be backed by a
	// previously compiled table.
	Config ports.ProjectConfiguration
	// Cache compiles the per-module configuration sub-caches.
	Cache ports.ConfigCache
	// Target is the artifact path.
	Target string
}

// Run resolves every module resource and writes the compiled table to req.Target.
// Sub-cache and generator failures are logged as warnings; failing to remove a
// stale artifact or to write the new one aborts the run.
func (o *Optimizer) Run(ctx context.Context, req Request) (*domain.CacheTable, error) {
	ctx, span := o.tracer.Start(ctx, "optimize")
	defer span.End()
	span.SetAttribute("target", req.Target)

	table, err := o.run(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return table, nil
}

func (o *Optimizer) run(ctx context.Context, req Request) (*domain.CacheTable, error) {
	cfg := req.Config

	modules := o.traceModules(ctx, cfg)

	if err := o.fs.Remove(req.Target); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStaleArtifactRemoveFailed.Error()), "path", req.Target)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.ImportGenerators(ctx, req.Cache, modules)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.WarmSubCaches(ctx, req.Cache, modules)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := o.traceCompile(ctx, cfg, modules)

	dir := filepath.Dir(req.Target)
	if err := o.fs.MkdirAll(dir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactDirCreateFailed.Error()), "path", dir)
	}

	o.logger.Info(domain.FileCreatedPrefix + req.Target)

	_, span := o.tracer.Start(ctx, "save")
	defer span.End()
	if err := o.store.Save(req.Target, table); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return table, nil
}

func (o *Optimizer) traceModules(ctx context.Context, cfg ports.ProjectConfiguration) []string {
	_, span := o.tracer.Start(ctx, "resolve modules")
	defer span.End()

	modules := o.ResolveModules(cfg)
	span.SetAttribute("modules", len(modules))
	return modules
}

func (o *Optimizer) traceCompile(ctx context.Context, cfg ports.ProjectConfiguration, modules []string) *domain.CacheTable {
	_, span := o.tracer.Start(ctx, "scan")
	templates := o.ScanTemplates(cfg, modules)
	controllers := ScanControllerDirs(cfg, modules)
	helpers := o.ScanHelpers(cfg, modules)
	span.End()

	_, span = o.tracer.Start(ctx, "compile")
	defer span.End()

	table := Compile(cfg, modules,
		ReduceTemplates(cfg, templates),
		controllers,
		ReduceModuleHelpers(helpers.Module),
		ReduceGlobalHelpers(helpers.Global),
	)
	span.SetAttribute("templates", countTemplates(table))
	return table
}

func countTemplates(table *domain.CacheTable) int {
	n := 0
	for _, templates := range table.TemplateDirs {
		n += len(templates)
	}
	return n
}
