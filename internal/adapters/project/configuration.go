// Package project answers directory-convention lookups for one application environment.
package project

import (
	"os"
	"path/filepath"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

var _ ports.ProjectConfiguration = (*Configuration)(nil)

// Configuration implements ports.ProjectConfiguration over a resolved layout.
// When a compiled table is attached with WithCache, template, controller and
// helper lookups are answered from it instead of the filesystem.
type Configuration struct {
	layout *domain.Layout
	table  *domain.CacheTable
}

// NewConfiguration creates an uncached Configuration.
func NewConfiguration(layout *domain.Layout) *Configuration {
	return &Configuration{layout: layout}
}

// WithCache returns a copy of the configuration that answers lookups from table.
func (c *Configuration) WithCache(table *domain.CacheTable) *Configuration {
	return &Configuration{layout: c.layout, table: table}
}

// Layout returns the underlying layout.
func (c *Configuration) Layout() *domain.Layout {
	return c.layout
}

// ModuleDir returns the application module root.
func (c *Configuration) ModuleDir() string {
	return c.layout.AppModuleDir
}

// CoreModuleDir returns the framework directory holding built-in modules.
func (c *Configuration) CoreModuleDir() string {
	return c.layout.CoreModuleDir()
}

// PluginPaths returns the plugin roots as declared.
func (c *Configuration) PluginPaths() []string {
	if c.table != nil {
		return c.table.PluginPaths
	}
	return c.layout.PluginPaths()
}

// PluginSubPaths joins sub onto every plugin root.
func (c *Configuration) PluginSubPaths(sub string) []string {
	return c.layout.PluginSubPaths(sub)
}

// EnabledModules returns the enabled-module allow-list.
func (c *Configuration) EnabledModules() []string {
	return c.layout.EnabledModules
}

// HelperSuffix returns the stem suffix identifying helper files.
func (c *Configuration) HelperSuffix() string {
	return c.layout.HelperSuffix
}

// TemplateDirs returns the template roots of module in priority order.
func (c *Configuration) TemplateDirs(module string) []string {
	return c.layout.ModuleSubDirs(module, "templates")
}

// TemplateDir returns the first template root of module holding template.
func (c *Configuration) TemplateDir(module, template string) (string, bool) {
	if c.table != nil {
		return c.table.TemplateDir(module, template)
	}
	for _, dir := range c.TemplateDirs(module) {
		info, err := os.Stat(filepath.Join(dir, template))
		if err == nil && !info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// ControllerDirs returns the controller directories of module in priority order.
func (c *Configuration) ControllerDirs(module string) []string {
	if c.table != nil {
		if dirs := c.table.Controllers(module); dirs != nil {
			return dirs
		}
	}
	return c.layout.ModuleSubDirs(module, "actions")
}

// HelperDirs returns the helper directories of module. A non-empty module gets its own
// directory first, followed by the plugin module directories and the global directories.
func (c *Configuration) HelperDirs(module string) []string {
	var dirs []string
	if module != "" {
		dirs = append(dirs, filepath.Join(c.layout.AppModuleDir, module, "lib", "helper"))
		for _, p := range c.layout.PluginSubPaths("modules") {
			dirs = append(dirs, filepath.Join(p, module, "lib", "helper"))
		}
	}

	dirs = append(dirs,
		filepath.Join(c.layout.AppLibDir, "helper"),
		filepath.Join(c.layout.ProjectLibDir, "helper"),
	)
	for _, p := range c.layout.PluginPaths() {
		dirs = append(dirs, filepath.Join(p, "lib", "helper"))
	}
	return append(dirs, c.layout.FrameworkHelperDir())
}
