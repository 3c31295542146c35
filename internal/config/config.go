package config

import "path/filepath"

// Config represents the complete defgen configuration.
// It can be loaded from .defgen/config.yml with environment variable overrides.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// InputConfig locates the source artifact.
type InputConfig struct {
	ScriptDefs string `yaml:"scriptdefs" mapstructure:"scriptdefs"` // path to PyKotor scriptdefs.py
}

// OutputConfig controls where and how the generated module is written.
type OutputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`     // generated .ts file location
	Verify bool   `yaml:"verify" mapstructure:"verify"` // syntax-check output before writing
}

// Default returns a configuration matching the historical fixed layout:
// the vendored PyKotor source in, the language-server definitions file out.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			ScriptDefs: filepath.Join("vendor", "pykotor", "common", "scriptdefs.py"),
		},
		Output: OutputConfig{
			Path:   filepath.Join("server", "src", "kotor-definitions.ts"),
			Verify: true,
		},
	}
}

// Resolve anchors any relative paths to the given root directory.
func (c *Config) Resolve(rootDir string) {
	if !filepath.IsAbs(c.Input.ScriptDefs) {
		c.Input.ScriptDefs = filepath.Join(rootDir, c.Input.ScriptDefs)
	}
	if !filepath.IsAbs(c.Output.Path) {
		c.Output.Path = filepath.Join(rootDir, c.Output.Path)
	}
}
