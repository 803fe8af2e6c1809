package optimizer

import (
	"slices"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

var moduleQuery = domain.FindQuery{
	Type:        domain.EntryDir,
	MaxDepth:    0,
	FollowLinks: true,
}

// ResolveModules returns the sorted union of the application modules, the enabled
// plugin modules and the framework core modules.
func (o *Optimizer) ResolveModules(cfg ports.ProjectConfiguration) []string {
	set := make(map[string]struct{})

	for m := range o.finder.Find([]string{cfg.ModuleDir()}, moduleQuery) {
		set[m.Rel] = struct{}{}
	}

	enabled := cfg.EnabledModules()
	for m := range o.finder.Find(cfg.PluginSubPaths("modules"), moduleQuery) {
		if slices.Contains(enabled, m.Rel) {
			set[m.Rel] = struct{}{}
		}
	}

	for m := range o.finder.Find([]string{cfg.CoreModuleDir()}, moduleQuery) {
		set[m.Rel] = struct{}{}
	}

	modules := make([]string, 0, len(set))
	for m := range set {
		modules = append(modules, m)
	}
	slices.Sort(modules)
	return modules
}
