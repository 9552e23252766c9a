// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all shopdesk configuration.
type Config struct {
	Search  Search  `yaml:"search"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Search holds incremental search settings.
type Search struct {
	Debounce time.Duration `yaml:"debounce"` // Quiet period before a query is committed
}

// Display holds presentation settings.
type Display struct {
	PhoneRegion string `yaml:"phone_region"` // ISO 3166 region for phone formatting
	TimeFormat  string `yaml:"time_format"`  // Go layout for "Added" timestamps
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "text" | "json"
	File   string `yaml:"file"`   // Empty discards log output
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Search: Search{
			Debounce: 200 * time.Millisecond,
		},
		Display: Display{
			PhoneRegion: "US",
			TimeFormat:  "2006-01-02 15:04",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML config data over the defaults. name is used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("config: search.debounce must be positive, got %v", c.Search.Debounce)
	}
	if !isRegionCode(c.Display.PhoneRegion) {
		return fmt.Errorf("config: display.phone_region must be a two-letter uppercase region code, got %q", c.Display.PhoneRegion)
	}
	if c.Display.TimeFormat == "" {
		return errors.New("config: display.time_format cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("config: log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

func isRegionCode(s string) bool {
	return len(s) == 2 && s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: SHOPDESK_SEARCH_DEBOUNCE, SHOPDESK_PHONE_REGION,
// SHOPDESK_LOG_LEVEL, SHOPDESK_LOG_FILE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SHOPDESK_SEARCH_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid SHOPDESK_SEARCH_DEBOUNCE %q: %w", v, err)
		}
		c.Search.Debounce = d
	}
	if v := os.Getenv("SHOPDESK_PHONE_REGION"); v != "" {
		c.Display.PhoneRegion = v
	}
	if v := os.Getenv("SHOPDESK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SHOPDESK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Search  *rawSearch  `yaml:"search"`
	Display *rawDisplay `yaml:"display"`
	Log     *rawLog     `yaml:"log"`
}

type rawSearch struct {
	Debounce *time.Duration `yaml:"debounce"`
}

type rawDisplay struct {
	PhoneRegion *string `yaml:"phone_region"`
	TimeFormat  *string `yaml:"time_format"`
}

type rawLog struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
	File   *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Search != nil {
		if layer.Search.Debounce != nil {
			c.Search.Debounce = *layer.Search.Debounce
		}
	}
	if layer.Display != nil {
		if layer.Display.PhoneRegion != nil {
			c.Display.PhoneRegion = *layer.Display.PhoneRegion
		}
		if layer.Display.TimeFormat != nil {
			c.Display.TimeFormat = *layer.Display.TimeFormat
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.Format != nil {
			c.Log.Format = *layer.Log.Format
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
}
