// Package config loads settings for the poker-outs command from an HCL file,
// with environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variables that override the config file
const (
	// EnvLogLevel overrides log.level
	EnvLogLevel = "POKER_OUTS_LOG_LEVEL"

	// EnvWorkers overrides enumerate.workers
	EnvWorkers = "POKER_OUTS_WORKERS"
)

const (
	defaultLogLevel  = "info"
	defaultPrecision = 4
	maxPrecision     = 12
)

// Config represents the complete poker-outs configuration
type Config struct {
	Log       *LogSettings       `hcl:"log,block"`
	Enumerate *EnumerateSettings `hcl:"enumerate,block"`
	Display   *DisplaySettings   `hcl:"display,block"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// EnumerateSettings controls the exhaustive board walk
type EnumerateSettings struct {
	// Always runs the walk alongside the closed forms
	Always bool `hcl:"always,optional"`

	// Workers bounds the walk's goroutines (0 means one per CPU)
	Workers int `hcl:"workers,optional"`
}

// DisplaySettings controls terminal output
type DisplaySettings struct {
	// Precision is the number of decimal places shown for percentages.
	// Zero selects the default.
	Precision int  `hcl:"precision,optional"`
	Plain     bool `hcl:"plain,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log:       &LogSettings{Level: defaultLogLevel},
		Enumerate: &EnumerateSettings{},
		Display:   &DisplaySettings{Precision: defaultPrecision},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything left unset
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Enumerate == nil {
		c.Enumerate = def.Enumerate
	}
	if c.Display == nil {
		c.Display = def.Display
	}
	if c.Display.Precision == 0 {
		c.Display.Precision = defaultPrecision
	}
}

// ApplyEnv overrides settings from the environment
func (c *Config) ApplyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if workers := os.Getenv(EnvWorkers); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Enumerate.Workers = n
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Enumerate.Workers < 0 {
		return fmt.Errorf("enumerate workers must not be negative, got %d", c.Enumerate.Workers)
	}
	if c.Display.Precision < 0 || c.Display.Precision > maxPrecision {
		return fmt.Errorf("display precision must be between 0 and %d, got %d",
			maxPrecision, c.Display.Precision)
	}
	return nil
}

// LogLevel returns the configured log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
