package optimizer

import (
	"maps"
	"slices"

	"go.trai.ch/optic/internal/core/ports"
)

// ReduceTemplates keeps, per module and template, the directory chosen by the
// configuration. Templates without a winner are omitted.
func ReduceTemplates(cfg ports.ProjectConfiguration, candidates TemplateCandidates) map[string]map[string]string {
	reduced := make(map[string]map[string]string, len(candidates))
	for module, templates := range candidates {
		winners := make(map[string]string, len(templates))
		for _, template := range slices.Sorted(maps.Keys(templates)) {
			if dir, ok := cfg.TemplateDir(module, template); ok {
				winners[template] = dir
			}
		}
		reduced[module] = winners
	}
	return reduced
}

// ReduceModuleHelpers maps helper names to files per module. The last file scanned
// for a name wins.
func ReduceModuleHelpers(scanned map[string][]HelperFile) map[string]map[string]string {
	reduced := make(map[string]map[string]string, len(scanned))
	for module, files := range scanned {
		if len(files) == 0 {
			continue
		}
		helpers := make(map[string]string, len(files))
		for _, f := range files {
			helpers[f.Name] = f.Path
		}
		reduced[module] = helpers
	}
	return reduced
}

// ReduceGlobalHelpers maps helper names to files. The first file seen for a name wins.
func ReduceGlobalHelpers(files []HelperFile) map[string]string {
	reduced := make(map[string]string, len(files))
	for _, f := range files {
		if _, ok := reduced[f.Name]; !ok {
			reduced[f.Name] = f.Path
		}
	}
	return reduced
}
