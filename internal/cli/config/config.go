// Package config loads elmproxy settings from elmproxy.yaml, ELMPROXY_
// environment variables and command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/stencil-elm/elmproxy/internal/compiler/codegen"
	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

const (
	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "ELMPROXY"
	// FileName is the config file name searched for without an extension
	FileName = "elmproxy"
	// DefaultManifest is the manifest path used when none is configured
	DefaultManifest = "components.json"
)

// Config represents the elmproxy configuration
type Config struct {
	Manifest          string   `mapstructure:"manifest" yaml:"manifest"`
	OutputDir         string   `mapstructure:"output_dir" yaml:"output_dir"`
	ModulePrefix      string   `mapstructure:"module_prefix" yaml:"module_prefix,omitempty"`
	ExcludeComponents []string `mapstructure:"exclude_components" yaml:"exclude_components,omitempty"`
	SlotAttribute     bool     `mapstructure:"slot_attribute" yaml:"slot_attribute"`

	// File is the config file that was read; empty when none was found
	File string `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Manifest:      DefaultManifest,
		SlotAttribute: true,
	}
}

// New creates a viper instance reading from fs that searches dir for
// elmproxy.yaml, elmproxy.yml or elmproxy.json. Command flags are bound to
// it before Load.
func New(fs afero.Fs, dir string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)

	def := Default()
	v.SetDefault("manifest", def.Manifest)
	v.SetDefault("output_dir", "")
	v.SetDefault("module_prefix", "")
	v.SetDefault("exclude_components", []string{})
	v.SetDefault("slot_attribute", def.SlotAttribute)

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration. When file is set it must exist; otherwise
// a missing config file just leaves the defaults in place. Relative paths
// are resolved against the directory of the config file that was read.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if cfg.File != "" {
		base := filepath.Dir(cfg.File)
		cfg.Manifest = resolve(base, cfg.Manifest)
		cfg.OutputDir = resolve(base, cfg.OutputDir)
	}

	return &cfg, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks the settings generation cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.NewMissingOutputDir()
	}
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.NewInvalidManifest("", "manifest path is empty")
	}
	return nil
}

// Options converts the configuration into generator options
func (c *Config) Options(logger *zap.Logger) codegen.Options {
	return codegen.Options{
		OutputDir:         c.OutputDir,
		ModulePrefix:      c.ModulePrefix,
		ExcludeComponents: c.ExcludeComponents,
		SlotAttribute:     c.SlotAttribute,
		Logger:            logger,
	}
}

// Save writes the configuration as YAML
func Save(fs afero.Fs, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Files returns the files whose changes should trigger a regeneration
func (c *Config) Files() []string {
	files := []string{c.Manifest}
	if c.File != "" {
		files = append(files, c.File)
	}
	return files
}
