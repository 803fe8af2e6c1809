package ports

// ProjectConfiguration answers directory-convention questions for one application environment.
//
//go:generate mockgen -source=configuration.go -destination=mocks/mock_configuration.go -package=mocks
type ProjectConfiguration interface {
	// ModuleDir returns the application module root.
	ModuleDir() string
	// CoreModuleDir returns the framework directory holding built-in modules.
	CoreModuleDir() string
	// PluginPaths returns the plugin roots as declared.
	PluginPaths() []string
	// PluginSubPaths joins sub onto every plugin root.
	PluginSubPaths(sub string) []string
	// EnabledModules returns the allow-list applied to plugin-provided modules.
	EnabledModules() []string
	// HelperSuffix returns the stem suffix identifying helper files.
	HelperSuffix() string

	// TemplateDirs returns the template roots of module in priority order.
	TemplateDirs(module string) []string
	// TemplateDir returns the directory that serves template for module.
	TemplateDir(module, template string) (string, bool)
	// ControllerDirs returns the controller directories of module in priority order.
	ControllerDirs(module string) []string
	// HelperDirs returns the helper directories of module. The first entry is the
	// module-specific directory when module is not empty. An empty module yields
	// only the global directories.
	HelperDirs(module string) []string
}
