// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all scorer configuration.
type Config struct {
	// Matching policy
	Policy PolicyConfig `yaml:"policy"`

	// Optional slot list file; when empty, the scored queries are the
	// query ids observed in the response file.
	SlotsFile string `envconfig:"SFSCORE_SLOTS_FILE" yaml:"slots_file"`

	// Report configuration
	Report ReportConfig `yaml:"report"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// PolicyConfig holds the leniency flags for judgment matching.
type PolicyConfig struct {
	// Trace prints one assessment line per system response.
	Trace bool `envconfig:"SFSCORE_TRACE" yaml:"trace"`

	// AnyDoc judges responses on the answer string alone, ignoring
	// doc id and justification offsets. Implies IgnoreOffsets.
	AnyDoc bool `envconfig:"SFSCORE_ANYDOC" yaml:"anydoc"`

	// IgnoreOffsets judges responses on answer string and doc id,
	// ignoring justification offsets.
	IgnoreOffsets bool `envconfig:"SFSCORE_IGNORE_OFFSETS" yaml:"ignore_offsets"`

	// NoCase ignores case when matching answer strings.
	NoCase bool `envconfig:"SFSCORE_NOCASE" yaml:"nocase"`
}

// ReportConfig holds summary report settings.
type ReportConfig struct {
	Format string `envconfig:"SFSCORE_REPORT_FORMAT" yaml:"format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"SFSCORE_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"SFSCORE_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from environment variables and optional config file.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Set defaults first
	setDefaults(cfg)

	// Load from YAML file if provided (overrides defaults)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Report = ReportConfig{
		Format: "text",
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []string

	validReportFormats := map[string]bool{"text": true, "json": true}
	if !validReportFormats[c.Report.Format] {
		errs = append(errs, fmt.Sprintf("invalid report format: %s (must be text or json)", c.Report.Format))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
