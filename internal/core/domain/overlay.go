package domain

import "path/filepath"

// OverlayKind tags the origin of an overlay root.
type OverlayKind string

const (
	// OverlayApplication is the application tree.
	OverlayApplication OverlayKind = "application"
	// OverlayPlugin is a plugin tree.
	OverlayPlugin OverlayKind = "plugin"
	// OverlayFramework is the framework-provided base tree.
	OverlayFramework OverlayKind = "framework"
	// OverlayGenerated is the tree of modules generated into the cache.
	OverlayGenerated OverlayKind = "generated"
)

// OverlayRoot is one layer of the module namespace. Rank 0 is the highest priority.
type OverlayRoot struct {
	Name string
	Path string
	Rank int
	Kind OverlayKind
}

// ModuleDir returns the directory of module inside this overlay.
func (o OverlayRoot) ModuleDir(module string) string {
	if o.Kind == OverlayGenerated {
		return filepath.Join(o.Path, GeneratedModuleName(module))
	}
	return filepath.Join(o.Path, module)
}

// Overlays returns the module overlays in priority order:
// application, plugins as declared, framework core, generated modules.
func (l *Layout) Overlays() []OverlayRoot {
	overlays := make([]OverlayRoot, 0, len(l.Plugins)+3)
	overlays = append(overlays, OverlayRoot{
		Name: l.Application,
		Path: l.AppModuleDir,
		Kind: OverlayApplication,
	})
	for _, p := range l.Plugins {
		overlays = append(overlays, OverlayRoot{
			Name: p.Name,
			Path: filepath.Join(p.Path, "modules"),
			Kind: OverlayPlugin,
		})
	}
	overlays = append(overlays,
		OverlayRoot{Name: "framework", Path: l.CoreModuleDir(), Kind: OverlayFramework},
		OverlayRoot{Name: "generated", Path: l.ModuleCacheDir, Kind: OverlayGenerated},
	)
	for i := range overlays {
		overlays[i].Rank = i
	}
	return overlays
}

// ModuleSubDirs joins sub onto the directory of module in every overlay, in priority order.
func (l *Layout) ModuleSubDirs(module, sub string) []string {
	overlays := l.Overlays()
	dirs := make([]string, len(overlays))
	for i, o := range overlays {
		dirs[i] = filepath.Join(o.ModuleDir(module), sub)
	}
	return dirs
}
