// Package configcache compiles layered YAML configuration into cached JSON files
// and runs module generators.
package configcache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigCache = (*Cache)(nil)

// allSection holds settings shared by every environment.
const allSection = "all"

// Compiled is the on-disk form of a compiled configuration source.
type Compiled struct {
	Source string         `json:"source"`
	Files  []string       `json:"files"`
	Digest string         `json:"digest"`
	Data   map[string]any `json:"data"`
}

// Cache implements ports.ConfigCache for one application environment.
type Cache struct {
	layout *domain.Layout
	hasher ports.Hasher
}

// New creates a Cache for the given layout.
func New(layout *domain.Layout, hasher ports.Hasher) *Cache {
	return &Cache{layout: layout, hasher: hasher}
}

// CacheName returns the compiled file path of a logical source.
func (c *Cache) CacheName(source string) string {
	return filepath.Join(c.layout.ConfigCacheDir, strings.ReplaceAll(source, "/", "_")+".json")
}

// CheckConfig compiles source into its cache file. Without force, a cache file whose
// digest matches the current sources is kept. It returns "" when no source file exists.
func (c *Cache) CheckConfig(ctx context.Context, source string, force bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	files := c.SourceFiles(source)
	if len(files) == 0 {
		return "", nil
	}

	digest, err := c.hasher.ComputeDigest(files, c.layout.Environment, source)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSubCacheReadFailed.Error())
	}

	cacheName := c.CacheName(source)
	if !force {
		if existing, err := readCompiled(cacheName); err == nil && existing.Digest == digest {
			return cacheName, nil
		}
	}

	data, err := c.merge(files)
	if err != nil {
		return "", err
	}

	compiled := Compiled{Source: source, Files: files, Digest: digest, Data: data}
	if err := writeCompiled(cacheName, &compiled); err != nil {
		return "", zerr.With(err, "source", source)
	}

	return cacheName, nil
}

// Load returns the compiled form of source, compiling it when needed.
func (c *Cache) Load(ctx context.Context, source string) (*Compiled, error) {
	cacheName, err := c.CheckConfig(ctx, source, false)
	if err != nil || cacheName == "" {
		return nil, err
	}
	return readCompiled(cacheName)
}

// SourceFiles returns the existing files backing a logical source, lowest priority first.
//
// A module source "modules/<m>/<rest>" is layered as: application <rest>, framework
// module, plugin modules from the last declared plugin to the first, generated module
// and finally the application module. Any other source is layered as project then
// application.
func (c *Cache) SourceFiles(source string) []string {
	var candidates []string

	parts := strings.SplitN(source, "/", 3)
	if len(parts) == 3 && parts[0] == "modules" {
		module, rest := parts[1], filepath.FromSlash(parts[2])
		candidates = append(candidates,
			filepath.Join(c.layout.AppDir, rest),
			filepath.Join(c.layout.CoreModuleDir(), module, rest),
		)
		plugins := c.layout.PluginSubPaths("modules")
		for i := len(plugins) - 1; i >= 0; i-- {
			candidates = append(candidates, filepath.Join(plugins[i], module, rest))
		}
		candidates = append(candidates,
			filepath.Join(c.layout.GeneratedModuleDir(module), rest),
			filepath.Join(c.layout.AppModuleDir, module, rest),
		)
	} else {
		rel := filepath.FromSlash(source)
		candidates = append(candidates,
			filepath.Join(c.layout.Root, rel),
			filepath.Join(c.layout.AppDir, rel),
		)
	}

	files := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			files = append(files, candidate)
		}
	}
	return files
}

func (c *Cache) merge(files []string) (map[string]any, error) {
	merged := make(map[string]any)
	for _, file := range files {
		doc, err := readYAML(file)
		if err != nil {
			return nil, err
		}
		merged = deepMerge(merged, c.selectEnvironment(doc))
	}
	return merged, nil
}

// selectEnvironment returns the "all" section merged with the environment section when
// the document is split by environment, and the whole document otherwise.
func (c *Cache) selectEnvironment(doc map[string]any) map[string]any {
	all, hasAll := doc[allSection]
	env, hasEnv := doc[c.layout.Environment]
	if !hasAll && !hasEnv {
		return doc
	}

	section := make(map[string]any)
	if m, ok := all.(map[string]any); ok {
		section = deepMerge(section, m)
	}
	if m, ok := env.(map[string]any); ok {
		section = deepMerge(section, m)
	}
	return section
}

func readYAML(path string) (map[string]any, error) {
	//nolint:gosec // Path is built from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSubCacheReadFailed.Error()), "path", path)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSubCacheParseFailed.Error()), "path", path)
	}
	if doc == nil {
		return map[string]any{}, nil
	}
	normalized, _ := normalize(doc).(map[string]any)
	return normalized, nil
}

func readCompiled(path string) (*Compiled, error) {
	//nolint:gosec // Path is built from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSubCacheReadFailed.Error()), "path", path)
	}

	var compiled Compiled
	if err := json.Unmarshal(data, &compiled); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSubCacheParseFailed.Error()), "path", path)
	}
	return &compiled, nil
}

func writeCompiled(path string, compiled *Compiled) error {
	data, err := json.MarshalIndent(compiled, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSubCacheWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSubCacheWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is built from the project layout
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSubCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

// deepMerge merges src over dst. Nested maps are merged, every other value is replaced.
func deepMerge(dst, src map[string]any) map[string]any {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = deepMerge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = deepMerge(make(map[string]any), srcMap)
			continue
		}
		dst[key] = value
	}
	return dst
}

// normalize converts YAML mappings with non-string keys into string-keyed maps so
// the result can be encoded as JSON.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = normalize(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}
