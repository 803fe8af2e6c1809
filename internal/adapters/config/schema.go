package config

import (
	"gopkg.in/yaml.v3"
)

// Projectfile represents the structure of the optic.yaml configuration file.
type Projectfile struct {
	Version      string                    `yaml:"version"`
	Root         string                    `yaml:"root"`
	CacheDir     string                    `yaml:"cache_dir"`
	FrameworkDir string                    `yaml:"framework_dir"`
	PluginsDir   string                    `yaml:"plugins_dir"`
	HelperSuffix string                    `yaml:"helper_suffix"`
	Plugins      []PluginDTO               `yaml:"plugins"`
	Applications map[string]ApplicationDTO `yaml:"applications"`
}

// PluginDTO represents a plugin entry. A scalar entry is shorthand for a name.
type PluginDTO struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// UnmarshalYAML accepts either a plugin name or a mapping with name and path.
func (p *PluginDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Name = node.Value
		return nil
	}

	type plain PluginDTO
	var dto plain
	if err := node.Decode(&dto); err != nil {
		return err
	}
	*p = PluginDTO(dto)
	return nil
}

// ApplicationDTO represents an application definition in the configuration.
type ApplicationDTO struct {
	EnabledModules []string `yaml:"enabled_modules"`
}
