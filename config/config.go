package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/imfs/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI style verbosity bounds used by [ConfigOverride.LogLvl]
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultMaxNameLength is the longest name, in characters, accepted for a new entry
	DefaultMaxNameLength = 256

	DefaultPrompt = "imfs> "
)

// Config contains runtime configuration values for a namespace and the shell around it.
type Config struct {
	LogLvl        util.LogLevel // Internal log level (Default info)
	MaxNameLength int           // Longest accepted entry name in characters (Default 256)
	Prompt        string        // Interactive shell prompt (Default "imfs> ")
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is a CLI verbosity between 1 (error) and 5 (trace), not a [util.LogLevel].
type ConfigOverride struct {
	LogLvl        *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	MaxNameLength *int    `yaml:"max_name_length,omitempty" json:"max_name_length,omitempty"`
	Prompt        *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:        DefaultLogLvl,
		MaxNameLength: DefaultMaxNameLength,
		Prompt:        DefaultPrompt,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerboseToLogLevel clamps a CLI verbosity to 1..5 and maps it to a [util.LogLevel].
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
// Non-positive name lengths are ignored.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.MaxNameLength != nil && *override.MaxNameLength > 0 {
		c.MaxNameLength = *override.MaxNameLength
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
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
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
