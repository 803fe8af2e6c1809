package configcache

import (
	"bytes"
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultTheme is used when a generator configuration names no theme.
	DefaultTheme = "default"

	// generatorMarker records the digest a generated module was built from.
	generatorMarker = ".generated"

	moduleNamePlaceholder = "##MODULE_NAME##"
	modelClassPlaceholder = "##MODEL_CLASS##"
)

// generatedSubDirs are copied from a theme into a generated module.
var generatedSubDirs = []string{"templates", "actions"}

// GeneratorParams are the generator settings read from a module's generator.yml.
type GeneratorParams struct {
	Theme      string
	ModelClass string
}

// Import generates the module described by a "modules/<m>/config/generator.yml" source
// into the module cache. Without force, a module generated from the same sources is kept.
// A module without generator configuration is left untouched.
func (c *Cache) Import(ctx context.Context, source string, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	module, ok := generatorModule(source)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrGeneratorFailed, "not a generator source"), "source", source)
	}

	files := c.SourceFiles(source)
	if len(files) == 0 {
		return nil
	}

	digest, err := c.hasher.ComputeDigest(files, c.layout.Environment, source)
	if err != nil {
		return zerr.Wrap(err, domain.ErrGeneratorFailed.Error())
	}

	target := c.layout.GeneratedModuleDir(module)
	marker := filepath.Join(target, generatorMarker)
	if !force {
		//nolint:gosec // Path is built from the project layout
		if existing, err := os.ReadFile(marker); err == nil && string(existing) == digest {
			return nil
		}
	}

	data, err := c.merge(files)
	if err != nil {
		return err
	}
	params := generatorParams(data)

	themeDir, err := c.findTheme(params.Theme)
	if err != nil {
		return zerr.With(err, "module", module)
	}

	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", target)
	}

	replacer := strings.NewReplacer(
		moduleNamePlaceholder, module,
		modelClassPlaceholder, params.ModelClass,
	)
	for _, sub := range generatedSubDirs {
		if err := copyTree(filepath.Join(themeDir, sub), filepath.Join(target, sub), replacer); err != nil {
			return zerr.With(err, "module", module)
		}
	}

	if err := os.MkdirAll(target, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", target)
	}
	if err := os.WriteFile(marker, []byte(digest), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", marker)
	}

	return nil
}

func (c *Cache) findTheme(theme string) (string, error) {
	for _, dir := range c.layout.GeneratorThemeDirs(theme) {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", zerr.With(domain.ErrGeneratorThemeNotFound, "theme", theme)
}

// generatorModule extracts the module of a "modules/<m>/config/generator.yml" source.
func generatorModule(source string) (string, bool) {
	parts := strings.Split(source, "/")
	if len(parts) != 4 || parts[0] != "modules" || parts[2] != "config" {
		return "", false
	}
	if parts[3] != domain.GeneratorConfig+".yml" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// generatorParams reads generator.param.theme and generator.param.model_class.
func generatorParams(data map[string]any) GeneratorParams {
	params := GeneratorParams{Theme: DefaultTheme}

	generator, _ := data["generator"].(map[string]any)
	param, _ := generator["param"].(map[string]any)
	if theme, ok := param["theme"].(string); ok && theme != "" {
		params.Theme = theme
	}
	if model, ok := param["model_class"].(string); ok {
		params.ModelClass = model
	}
	return params
}

// copyTree copies the regular files under src to dst, substituting placeholders in their
// contents. A missing src copies nothing.
func copyTree(src, dst string, replacer *strings.Replacer) error {
	if _, err := os.Stat(src); err != nil {
		return nil
	}

	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.Wrap(err, domain.ErrGeneratorFailed.Error())
		}
		out := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(out, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", out)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		//nolint:gosec // Path comes from a theme directory of the project
		content, err := os.ReadFile(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", path)
		}
		if bytes.Contains(content, []byte("##")) {
			content = []byte(replacer.Replace(string(content)))
		}
		if err := os.WriteFile(out, content, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrGeneratorFailed.Error()), "path", out)
		}
		return nil
	})
}
