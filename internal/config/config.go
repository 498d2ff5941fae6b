// Package config handles layered YAML configuration with environment overrides.
// Configuration covers presentation only (prompt, greeting, session mode);
// contact data is never read from or written to disk.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration.
type Config struct {
	UI UI `yaml:"ui"`
}

// UI holds interactive session presentation settings.
type UI struct {
	Prompt   string `yaml:"prompt"`
	Greeting string `yaml:"greeting"`
	Farewell string `yaml:"farewell"`
	Plain    bool   `yaml:"plain"` // Force the plain loop even on a TTY.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to rolo. Type 'help' to see commands.",
			Farewell: "Good bye!",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

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
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
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
	if c.UI.Prompt == "" {
		return errors.New("config: ui.prompt cannot be empty")
	}
	if c.UI.Farewell == "" {
		return errors.New("config: ui.farewell cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_PROMPT, ROLO_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	if v := os.Getenv("ROLO_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI *rawUI `yaml:"ui"`
}

type rawUI struct {
	Prompt   *string `yaml:"prompt"`
	Greeting *string `yaml:"greeting"`
	Farewell *string `yaml:"farewell"`
	Plain    *bool   `yaml:"plain"`
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

// merge applies the set fields of a raw layer onto the config.
func (c *Config) merge(raw *rawConfig) {
	if raw.UI == nil {
		return
	}
	if raw.UI.Prompt != nil {
		c.UI.Prompt = *raw.UI.Prompt
	}
	if raw.UI.Greeting != nil {
		c.UI.Greeting = *raw.UI.Greeting
	}
	if raw.UI.Farewell != nil {
		c.UI.Farewell = *raw.UI.Farewell
	}
	if raw.UI.Plain != nil {
		c.UI.Plain = *raw.UI.Plain
	}
}
