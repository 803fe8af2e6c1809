package domain

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "optic.yaml"

	// DefaultEnvironment is used when no environment is given on the command line.
	DefaultEnvironment = "prod"

	// DefaultCacheDir is the project-relative cache root.
	DefaultCacheDir = "cache"

	// DefaultFrameworkDir is the project-relative framework tree.
	DefaultFrameworkDir = "lib/framework"

	// DefaultPluginsDir is the project-relative directory plugins are looked up in.
	DefaultPluginsDir = "plugins"

	// DefaultHelperSuffix is the file stem suffix identifying helper files.
	DefaultHelperSuffix = "Helper"

	// DefaultModule is the module enabled when an application declares none.
	DefaultModule = "default"

	// ArtifactFileName is the name of the compiled lookup artifact.
	ArtifactFileName = "configuration.json"

	// GeneratedModulePrefix prefixes the directory of a generated module in the module cache.
	GeneratedModulePrefix = "auto"

	// FileCreatedPrefix starts every log message announcing a written file.
	FileCreatedPrefix = "file+ "

	// DebugLogFile is the name of the debug log file written into a --log-file directory.
	DebugLogFile = "optic.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// SharedFilePerm is the permission of the artifact (rw-rw-rw-).
	SharedFilePerm = 0o666
)

// Layout is the resolved directory layout of one application environment.
// It is immutable for the duration of a run.
type Layout struct {
	Root           string
	Application    string
	Environment    string
	AppDir         string
	AppModuleDir   string
	AppLibDir      string
	ProjectLibDir  string
	DataDir        string
	FrameworkDir   string
	CacheDir       string
	ConfigCacheDir string
	ModuleCacheDir string
	HelperSuffix   string
	Plugins        []Plugin
	EnabledModules []string
}

// ArtifactPath returns <cache>/<application>/<environment>/config/configuration.json.
func (l *Layout) ArtifactPath() string {
	return filepath.Join(l.ConfigCacheDir, ArtifactFileName)
}

// CoreModuleDir returns the framework directory holding built-in modules.
func (l *Layout) CoreModuleDir() string {
	return filepath.Join(l.FrameworkDir, "controller")
}

// FrameworkHelperDir returns the framework helper directory.
func (l *Layout) FrameworkHelperDir() string {
	return filepath.Join(l.FrameworkDir, "helper")
}

// PluginPaths returns the plugin roots in declaration order.
func (l *Layout) PluginPaths() []string {
	paths := make([]string, len(l.Plugins))
	for i, p := range l.Plugins {
		paths[i] = p.Path
	}
	return paths
}

// PluginSubPaths joins sub onto every plugin root.
func (l *Layout) PluginSubPaths(sub string) []string {
	paths := make([]string, len(l.Plugins))
	for i, p := range l.Plugins {
		paths[i] = filepath.Join(p.Path, sub)
	}
	return paths
}

// GeneratorThemeDirs returns the candidate directories of a generator theme, project first.
func (l *Layout) GeneratorThemeDirs(theme string) []string {
	return []string{
		filepath.Join(l.DataDir, "generator", theme),
		filepath.Join(l.FrameworkDir, "generator", theme),
	}
}

// GeneratedModuleDir returns the module cache directory of a generated module.
func (l *Layout) GeneratedModuleDir(module string) string {
	return filepath.Join(l.ModuleCacheDir, GeneratedModuleName(module))
}

// GeneratedModuleName returns "auto" followed by module with its first rune upper-cased.
func GeneratedModuleName(module string) string {
	r, size := utf8.DecodeRuneInString(module)
	if r == utf8.RuneError {
		return GeneratedModulePrefix + module
	}
	return GeneratedModulePrefix + string(unicode.ToUpper(r)) + module[size:]
}

// HelperName returns the short helper name of a file and whether the file is a helper.
// "UrlHelper.php" with suffix "Helper" yields "Url".
func HelperName(file, suffix string) (string, bool) {
	base := filepath.Base(file)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if !strings.HasSuffix(stem, suffix) {
		return "", false
	}
	name := strings.TrimSuffix(stem, suffix)
	if name == "" {
		return "", false
	}
	return name, true
}
