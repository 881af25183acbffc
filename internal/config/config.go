// Package config handles loading and saving user configuration for ziwei.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the chart command.
const (
	FormatHook   = "hook"
	FormatYAML   = "yaml"
	FormatGrid   = "grid"
	FormatRender = "render"
)

// Config holds all user configuration.
type Config struct {
	CachePath     string `yaml:"cache_path" mapstructure:"cache_path"`
	CacheEnabled  bool   `yaml:"cache_enabled" mapstructure:"cache_enabled"`
	LogLevel      string `yaml:"log_level" mapstructure:"log_level"`           // debug, info, warn, error
	Workers       int    `yaml:"workers" mapstructure:"workers"`               // 0 means GOMAXPROCS
	Romanize      string `yaml:"romanize" mapstructure:"romanize"`             // tone, plain, off
	DefaultFormat string `yaml:"default_format" mapstructure:"default_format"` // hook, yaml, grid, render
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cachePath := "cache.db"
	if dir, err := GetConfigDir(); err == nil {
		cachePath = filepath.Join(dir, "cache.db")
	}
	return &Config{
		CachePath:     cachePath,
		CacheEnabled:  true,
		LogLevel:      "warn",
		Workers:       0,
		Romanize:      "off",
		DefaultFormat: FormatGrid,
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.DefaultFormat {
	case FormatHook, FormatYAML, FormatGrid, FormatRender:
	default:
		return fmt.Errorf("default_format %q is not one of hook, yaml, grid, render", c.DefaultFormat)
	}
	switch c.Romanize {
	case "tone", "plain", "off", "":
	default:
		return fmt.Errorf("romanize %q is not one of tone, plain, off", c.Romanize)
	}
	return nil
}

// Load reads the config at path on top of Default. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// batchFile is the document shape of a batch input file.
type batchFile struct {
	Inputs []ziwei.BirthInput `yaml:"inputs" toml:"inputs"`
}

// LoadBatch reads birth inputs from a .yaml/.yml or .toml file. Inputs are
// decoded as-is; validation happens per item when the batch runs.
func LoadBatch(path string) ([]ziwei.BirthInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	var doc batchFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, fmt.Errorf("unsupported batch file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	return doc.Inputs, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ziwei"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
