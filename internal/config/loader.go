package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	cfgFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader bound to an explicit config file.
func NewFileLoader(rootDir, cfgFile string) Loader {
	return &loader{
		rootDir: rootDir,
		cfgFile: cfgFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DEFGEN_*)
// 2. Config file (.defgen/config.yml, or the explicit file given)
// 3. Default values
//
// Relative input/output paths are resolved against the root directory, so a
// bare invocation with no config at all reproduces the historical fixed
// relative layout.
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.cfgFile != "" {
		v.SetConfigFile(l.cfgFile)
	} else {
		configDir := filepath.Join(l.rootDir, ".defgen")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
	}

	// Enable environment variable overrides (e.g. DEFGEN_INPUT_SCRIPTDEFS)
	v.SetEnvPrefix("DEFGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("input.scriptdefs")
	v.BindEnv("output.path")
	v.BindEnv("output.verify")

	setDefaults(v)

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Resolve(l.rootDir)
	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.scriptdefs", defaults.Input.ScriptDefs)
	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("output.verify", defaults.Output.Verify)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
