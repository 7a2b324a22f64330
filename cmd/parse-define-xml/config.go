package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/defineEditor/parse-define-xml/define"
)

// Output formats.
const (
	formatJSON = "json"
	formatDump = "dump"
)

// Config holds the CLI settings. Flags override values read from the file.
type Config struct {
	Version   string `yaml:"version"`
	ARM       bool   `yaml:"arm"`
	Format    string `yaml:"format"`
	Jobs      int    `yaml:"jobs"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return parseConfig(data)
}

// parseConfig parses YAML data into a Config. Unknown keys are rejected.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = define.Version21.String()
	}

	if cfg.Format == "" {
		cfg.Format = formatJSON
	}

	if cfg.Jobs == 0 {
		cfg.Jobs = 4
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
}

// validate checks the settings and returns the Define-XML version to parse.
func (c *Config) validate() (define.Version, error) {
	version, err := define.ParseVersion(c.Version)
	if err != nil {
		return define.VersionUnknown, err
	}

	if c.Format != formatJSON && c.Format != formatDump {
		return define.VersionUnknown, fmt.Errorf("unknown format %q: expected %q or %q", c.Format, formatJSON, formatDump)
	}

	if c.Jobs < 1 {
		return define.VersionUnknown, fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}

	return version, nil
}
