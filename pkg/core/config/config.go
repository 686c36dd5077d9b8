// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     config
// Description: Configuration for the throwif tooling, read from TOML or YAML
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
	"github.com/msto63/throwif/foundation/core/throwif"
	"github.com/msto63/throwif/pkg/core/logging"
)

// EnvConfig names the environment variable holding the config file path
const EnvConfig = "THROWIF_CONFIG"

// DefaultCaptureImport is the import path of the capture package
const DefaultCaptureImport = "github.com/msto63/throwif/foundation/core/capture"

var (
	// ErrNoConfig is returned by LoadFromEnv when no config file exists
	ErrNoConfig = errors.New("no config file found")

	// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lint    LintConfig    `toml:"lint" yaml:"lint"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LintConfig holds settings for the lint command
type LintConfig struct {
	Paths         []string `toml:"paths" yaml:"paths"`
	Exclude       []string `toml:"exclude" yaml:"exclude"`
	IncludeTests  bool     `toml:"include_tests" yaml:"include_tests"`
	Format        string   `toml:"format" yaml:"format"`
	CaptureImport string   `toml:"capture_import" yaml:"capture_import"`
	Timeout       Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a string", node.Line)
	}
	if err := d.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the THROWIF_CONFIG environment variable
// or the first existing default location. It returns ErrNoConfig if neither
// yields a file.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("%w: set %s or create .throwif.toml", ErrNoConfig, EnvConfig)
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		".throwif.toml",
		".throwif.yaml",
		".throwif.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "throwif", "config.toml"))
	}
	return paths
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	// An empty document leaves the defaults in place
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = logging.FormatConsole
	}

	// Lint
	if len(c.Lint.Paths) == 0 {
		c.Lint.Paths = []string{"./..."}
	}
	if c.Lint.Format == "" {
		c.Lint.Format = "text"
	}
	if c.Lint.CaptureImport == "" {
		c.Lint.CaptureImport = DefaultCaptureImport
	}
	if c.Lint.Timeout.Duration == 0 {
		c.Lint.Timeout.Duration = 30 * time.Second
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	for i, p := range c.Lint.Paths {
		c.Lint.Paths[i] = os.ExpandEnv(p)
	}
}

// Validate checks the configuration after defaults have been applied.
// Violations are reported as guard errors naming the offending key.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.General.LogLevel); err != nil {
		return twerror.NewArgumentInvalid("general.log_level", err.Error())
	}
	if _, err := logging.ParseFormat(c.General.LogFormat); err != nil {
		return twerror.NewArgumentInvalid("general.log_format", err.Error())
	}

	if c.Lint.Format != "text" && c.Lint.Format != "json" {
		return twerror.NewArgumentOutOfRange("lint.format", c.Lint.Format,
			fmt.Sprintf("lint.format must be text or json, got %q", c.Lint.Format))
	}
	if err := throwif.IsNullOrWhiteSpace(capture.Value("lint.capture_import", c.Lint.CaptureImport)); err != nil {
		return err
	}
	if err := throwif.IsNegativeOrZero(capture.Value("lint.timeout", c.Lint.Timeout.Duration)); err != nil {
		return err
	}

	for _, pattern := range c.Lint.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return twerror.NewArgumentInvalid("lint.exclude",
				fmt.Sprintf("lint.exclude has invalid pattern %q", pattern))
		}
	}
	for _, p := range c.Lint.Paths {
		if err := throwif.IsNullOrWhiteSpace(capture.Value("lint.paths", p)); err != nil {
			return err
		}
	}

	return nil
}
