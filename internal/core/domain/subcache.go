package domain

import "path"

// ConfigKinds are the per-module configuration sources warmed by an optimization run.
var ConfigKinds = []string{"cache", "filters", "module", "security", "view"}

// GeneratorConfig is the per-module configuration describing a generated module.
const GeneratorConfig = "generator"

// SubCacheTarget identifies one compiled per-module configuration.
type SubCacheTarget struct {
	Module string
	Kind   string
}

// Source returns the logical configuration source, e.g. "modules/foo/config/view.yml".
func (t SubCacheTarget) Source() string {
	return ModuleConfigSource(t.Module, t.Kind)
}

// ModuleConfigSource returns the logical source of a module configuration kind.
func ModuleConfigSource(module, kind string) string {
	return path.Join("modules", module, "config", kind+".yml")
}

// SubCacheTargets returns every (module, kind) pair in module order.
func SubCacheTargets(modules []string) []SubCacheTarget {
	targets := make([]SubCacheTarget, 0, len(modules)*len(ConfigKinds))
	for _, m := range modules {
		for _, k := range ConfigKinds {
			targets = append(targets, SubCacheTarget{Module: m, Kind: k})
		}
	}
	return targets
}
