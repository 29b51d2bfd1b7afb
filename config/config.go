package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultRole is the viewer role selected before the user picks one
	DefaultRole = webtree.AdminRole

	// DefaultSource is the tree document location when none is given
	DefaultSource = "mock.json"

	// DefaultFetchTimeout bounds a single data source fetch, in seconds
	DefaultFetchTimeout = 10.0
)

// Config contains runtime configuration values for the tree host.
type Config struct {
	LogLvl       util.LogLevel    // Internal log level (Default info)
	DefaultRole  webtree.RoleName // Viewer role before one is selected (Default "admin")
	Source       string           // File path or http(s) URL of the tree document (Default "mock.json")
	FetchTimeout float64          // Data source fetch timeout in seconds (Default 10)
}

// FetchTimeoutDuration returns FetchTimeout as a time.Duration
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout * float64(time.Second))
}

// Validate checks the merged configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLvl, validation.Min(util.TraceLevel), validation.Max(util.ErrorLevel)),
		validation.Field(&c.DefaultRole, validation.Required),
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.FetchTimeout, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace).
type ConfigOverride struct {
	LogLvl       *int     `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	DefaultRole  *string  `yaml:"default_role,omitempty" json:"default_role,omitempty"`
	Source       *string  `yaml:"source,omitempty" json:"source,omitempty"`
	FetchTimeout *float64 `yaml:"fetch_timeout,omitempty" json:"fetch_timeout,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:       DefaultLogLvl,
		DefaultRole:  DefaultRole,
		Source:       DefaultSource,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// NewConfig creates a Config from defaults with override applied; override may be nil
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLevel(*override.LogLvl)
	}
	if override.DefaultRole != nil {
		c.DefaultRole = webtree.RoleName(*override.DefaultRole)
	}
	if override.Source != nil {
		c.Source = *override.Source
	}
	if override.FetchTimeout != nil {
		c.FetchTimeout = *override.FetchTimeout
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
