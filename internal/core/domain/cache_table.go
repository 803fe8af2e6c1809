package domain

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// GlobalModule is the pseudo-module key holding helpers that are not module-scoped.
const GlobalModule = ""

// CacheTable is the compiled lookup table written to the artifact.
// It is never mutated after compilation.
type CacheTable struct {
	// TemplateDirs maps module -> relative template path -> winning directory.
	TemplateDirs map[string]map[string]string `json:"templateDirs"`
	// ControllerDirs maps module -> every applicable controller directory in priority order.
	ControllerDirs map[string][]string `json:"controllerDirs"`
	// PluginPaths lists the plugin roots as declared.
	PluginPaths []string `json:"pluginPaths"`
	// Helpers maps module -> helper name -> file. The "" key holds global helpers.
	Helpers map[string]map[string]string `json:"helpers"`
}

// NewCacheTable returns an empty table with every field initialized.
func NewCacheTable() *CacheTable {
	return &CacheTable{
		TemplateDirs:   make(map[string]map[string]string),
		ControllerDirs: make(map[string][]string),
		PluginPaths:    []string{},
		Helpers:        make(map[string]map[string]string),
	}
}

// TemplateDir returns the directory serving template for module.
func (t *CacheTable) TemplateDir(module, template string) (string, bool) {
	dir, ok := t.TemplateDirs[module][template]
	return dir, ok
}

// Controllers returns the controller directories of module.
func (t *CacheTable) Controllers(module string) []string {
	return t.ControllerDirs[module]
}

// Helper returns the file of a helper, looking at module-scoped helpers before global ones.
func (t *CacheTable) Helper(module, name string) (string, bool) {
	if module != GlobalModule {
		if file, ok := t.Helpers[module][name]; ok {
			return file, true
		}
	}
	file, ok := t.Helpers[GlobalModule][name]
	return file, ok
}

// Modules returns every module present in the table, sorted.
func (t *CacheTable) Modules() []string {
	set := make(map[string]struct{})
	for m := range t.TemplateDirs {
		set[m] = struct{}{}
	}
	for m := range t.ControllerDirs {
		set[m] = struct{}{}
	}
	for m := range t.Helpers {
		if m != GlobalModule {
			set[m] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Entries yields every resolved entry: per module templates, then controller directories,
// then helpers; global helpers come last. Controller directories are named by their position.
func (t *CacheTable) Entries() iter.Seq[ResolvedEntry] {
	return func(yield func(ResolvedEntry) bool) {
		for _, module := range t.Modules() {
			for _, name := range slices.Sorted(maps.Keys(t.TemplateDirs[module])) {
				if !yield(ResolvedEntry{ResourceTemplate, module, name, t.TemplateDirs[module][name]}) {
					return
				}
			}
			for i, dir := range t.ControllerDirs[module] {
				if !yield(ResolvedEntry{ResourceControllerDir, module, strconv.Itoa(i), dir}) {
					return
				}
			}
			for _, name := range slices.Sorted(maps.Keys(t.Helpers[module])) {
				if !yield(ResolvedEntry{ResourceHelper, module, name, t.Helpers[module][name]}) {
					return
				}
			}
		}
		global := t.Helpers[GlobalModule]
		for _, name := range slices.Sorted(maps.Keys(global)) {
			if !yield(ResolvedEntry{ResourceHelper, GlobalModule, name, global[name]}) {
				return
			}
		}
	}
}
