// Package config loads bankocr settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StdStream is the input/output path that selects stdin or stdout.
const StdStream = "-"

// Config holds all bankocr configuration.
type Config struct {
	// Input file containing OCR glyph bands
	Input string `yaml:"input"`

	// Output file; result lines are appended, the file is created if absent
	Output string `yaml:"output"`

	Processing ProcessingConfig `yaml:"processing"`
	Watch      WatchConfig      `yaml:"watch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  "test_account.txt",
		Output: "output.txt",
		Processing: ProcessingConfig{
			Workers: 1,
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Dir:    filepath.Join(".bankocr", "logs"),
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BANKOCR_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("BANKOCR_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("BANKOCR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Processing.Workers = n
		}
	}
	if v := os.Getenv("BANKOCR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path not configured")
	}
	if c.Output == "" {
		return fmt.Errorf("output path not configured")
	}
	if err := c.Processing.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
