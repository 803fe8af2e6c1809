package optimizer

import (
	"slices"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

// Compile assembles the lookup table. Every module gets a template map, possibly
// empty. Global helpers are stored under domain.GlobalModule when there are any.
func Compile(
	cfg ports.ProjectConfiguration,
	modules []string,
	templates map[string]map[string]string,
	controllers map[string][]string,
	moduleHelpers map[string]map[string]string,
	globalHelpers map[string]string,
) *domain.CacheTable {
	table := domain.NewCacheTable()

	for _, module := range modules {
		dirs := templates[module]
		if dirs == nil {
			dirs = make(map[string]string)
		}
		table.TemplateDirs[module] = dirs

		ctrl := controllers[module]
		if ctrl == nil {
			ctrl = []string{}
		}
		table.ControllerDirs[module] = ctrl

		if helpers := moduleHelpers[module]; len(helpers) > 0 {
			table.Helpers[module] = helpers
		}
	}

	if plugins := cfg.PluginPaths(); plugins != nil {
		table.PluginPaths = slices.Clone(plugins)
	}

	if len(globalHelpers) > 0 {
		table.Helpers[domain.GlobalModule] = globalHelpers
	}

	return table
}
