// Package config loads the batting-report YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/myusername/batting-report/internal/utils"
)

// Config holds all batting-report configuration.
type Config struct {
	Filter  FilterConfig  `yaml:"filter"`
	Output  OutputConfig  `yaml:"output"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
}

// FilterConfig selects which records survive.
type FilterConfig struct {
	Letter string `yaml:"letter"` // first character of the surname, case-sensitive
}

// OutputConfig controls how the result is rendered.
type OutputConfig struct {
	Format  string `yaml:"format"`   // debug, dump, table, csv
	CSVPath string `yaml:"csv_path"` // optional extra CSV export
}

// FetchConfig configures loading from URLs.
type FetchConfig struct {
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Filter:  FilterConfig{Letter: "C"},
		Output:  OutputConfig{Format: utils.FormatDebug},
		Fetch:   FetchConfig{Timeout: "30s"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field that has a restricted set of values.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Filter.Letter) != 1 {
		return fmt.Errorf("filter.letter must be a single character, got %q", c.Filter.Letter)
	}
	if !slices.Contains(utils.Formats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", utils.Formats, c.Output.Format)
	}
	if _, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("fetch.timeout: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Letter returns the filter letter as a rune.
func (c *Config) Letter() rune {
	r, _ := utf8.DecodeRuneInString(c.Filter.Letter)
	return r
}

// FetchTimeout returns the parsed fetch timeout, falling back to 30s.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LogLevel returns the parsed logging level, falling back to info.
func (c *Config) LogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
