// Package config loads tabula settings from a YAML file and TABULA_*
// environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claryai/tabula/tables"
)

// Environment variables consulted by Load.
const (
	EnvPath          = "TABULA_CONFIG"
	EnvMinColumnGap  = "TABULA_MIN_COLUMN_GAP"
	EnvConcurrency   = "TABULA_CONCURRENCY"
	EnvCacheSize     = "TABULA_CACHE_SIZE"
	EnvLogLevel      = "TABULA_LOG_LEVEL"
	defaultLogLevel  = "info"
	defaultCacheSize = 1024
)

var (
	// ErrInvalidConfig is returned when a setting is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigNotFound is returned when an explicitly named file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// Config is the complete set of settings for the command line tool.
type Config struct {
	Parser tables.Config `yaml:"parser"`
	Batch  Batch         `yaml:"batch"`

	// debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// Batch configures multi-block runs.
type Batch struct {
	Concurrency int `yaml:"concurrency"`
	CacheSize   int `yaml:"cache_size"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Parser: tables.DefaultConfig(),
		Batch: Batch{
			Concurrency: 8,
			CacheSize:   defaultCacheSize,
		},
		LogLevel: defaultLogLevel,
	}
}

// Load reads the file at path, or the file named by TABULA_CONFIG when path
// is empty, then applies environment overrides. With neither set the
// defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected so
// that a misspelled setting does not silently fall back to its default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment, read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMinColumnGap, &c.Parser.MinColumnGap},
		{EnvConcurrency, &c.Batch.Concurrency},
		{EnvCacheSize, &c.Batch.CacheSize},
	}
	for _, v := range ints {
		raw, ok := lookup(v.name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.name, raw)
		}
		*v.dst = n
	}

	if level, ok := lookup(EnvLogLevel); ok && level != "" {
		c.LogLevel = level
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if err := c.Parser.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: batch.concurrency must be at least 1, got %d", ErrInvalidConfig, c.Batch.Concurrency)
	}
	if c.Batch.CacheSize < 0 {
		return fmt.Errorf("%w: batch.cache_size must not be negative, got %d", ErrInvalidConfig, c.Batch.CacheSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, name)
	}
	return level, nil
}
