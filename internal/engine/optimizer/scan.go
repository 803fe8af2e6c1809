package optimizer

import (
	"slices"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

// TemplateCandidates maps module -> relative template path -> every root containing
// it, in priority order.
type TemplateCandidates map[string]map[string][]string

// HelperFile is one helper found on disk.
type HelperFile struct {
	Name string
	Path string
}

// HelperScan holds the helpers found for every module and the global ones, in scan order.
type HelperScan struct {
	Module map[string][]HelperFile
	Global []HelperFile
}

// ScanTemplates lists every template file below the template roots of each module.
func (o *Optimizer) ScanTemplates(cfg ports.ProjectConfiguration, modules []string) TemplateCandidates {
	query := domain.FindQuery{
		Type:        domain.EntryFile,
		MaxDepth:    domain.Unlimited,
		FollowLinks: true,
	}

	candidates := make(TemplateCandidates, len(modules))
	for _, module := range modules {
		found := make(map[string][]string)
		for m := range o.finder.Find(cfg.TemplateDirs(module), query) {
			found[m.Rel] = append(found[m.Rel], m.Root)
		}
		candidates[module] = found
	}
	return candidates
}

// ScanControllerDirs copies the controller directories of each module.
func ScanControllerDirs(cfg ports.ProjectConfiguration, modules []string) map[string][]string {
	dirs := make(map[string][]string, len(modules))
	for _, module := range modules {
		dirs[module] = slices.Clone(cfg.ControllerDirs(module))
	}
	return dirs
}

// ScanHelpers lists module-scoped helpers from the first helper directory of each
// module and global helpers from every global helper directory.
func (o *Optimizer) ScanHelpers(cfg ports.ProjectConfiguration, modules []string) HelperScan {
	suffix := cfg.HelperSuffix()
	query := domain.FindQuery{
		Type:     domain.EntryFile,
		MaxDepth: domain.Unlimited,
		Suffix:   suffix,
	}

	scan := HelperScan{Module: make(map[string][]HelperFile)}
	for _, module := range modules {
		dirs := cfg.HelperDirs(module)
		if len(dirs) == 0 {
			continue
		}
		if files := o.helpers(dirs[:1], query, suffix); len(files) > 0 {
			scan.Module[module] = files
		}
	}

	scan.Global = o.helpers(cfg.HelperDirs(domain.GlobalModule), query, suffix)
	return scan
}

func (o *Optimizer) helpers(dirs []string, query domain.FindQuery, suffix string) []HelperFile {
	var files []HelperFile
	for m := range o.finder.Find(dirs, query) {
		name, ok := domain.HelperName(m.Rel, suffix)
		if !ok {
			continue
		}
		files = append(files, HelperFile{Name: name, Path: m.Path()})
	}
	return files
}
