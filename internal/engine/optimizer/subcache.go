package optimizer

import (
	"context"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

// ImportGenerators regenerates the generated module of every module that has a
// generator configuration.
func (o *Optimizer) ImportGenerators(ctx context.Context, cache ports.ConfigCache, modules []string) {
	ctx, span := o.tracer.Start(ctx, "import generators")
	defer span.End()

	for _, module := range modules {
		if ctx.Err() != nil {
			return
		}
		source := domain.ModuleConfigSource(module, domain.GeneratorConfig)
		if err := cache.Import(ctx, source, true); err != nil {
			span.RecordError(err)
			o.logger.Warn("skipping " + source + ": " + err.Error())
		}
	}
}

// WarmSubCaches deletes and recompiles every per-module configuration sub-cache.
func (o *Optimizer) WarmSubCaches(ctx context.Context, cache ports.ConfigCache, modules []string) {
	ctx, span := o.tracer.Start(ctx, "warm sub-caches")
	defer span.End()

	for _, target := range domain.SubCacheTargets(modules) {
		if ctx.Err() != nil {
			return
		}
		source := target.Source()

		if err := o.fs.Remove(cache.CacheName(source)); err != nil {
			o.logger.Warn("skipping " + source + ": " + err.Error())
			continue
		}

		path, err := cache.CheckConfig(ctx, source, true)
		if err != nil {
			span.RecordError(err)
			o.logger.Warn("skipping " + source + ": " + err.Error())
			continue
		}
		if path != "" {
			o.logger.Info(domain.FileCreatedPrefix + path)
		}
	}
}
