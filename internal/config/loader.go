package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file and default settings
const (
	EnvMultiplier = "TREASURE_MULTIPLIER"
	EnvOutput     = "TREASURE_OUTPUT"
)

// File mirrors the YAML configuration file. Absent fields keep their
// defaults; a categories list replaces the default list entirely.
type File struct {
	Categories []Category `yaml:"categories"`
	Multiplier *float64   `yaml:"multiplier"`
	Output     string     `yaml:"output"`
	Timeout    string     `yaml:"timeout"`
	UserAgent  string     `yaml:"user_agent"`
	Locator    string     `yaml:"locator"`
	LogLevel   string     `yaml:"log_level"`
}

// LoadFile reads a YAML configuration file.
// A missing file yields ErrConfigNotFound.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &f, nil
}

// Apply overlays the file's settings onto c
func (f *File) Apply(c Config) (Config, error) {
	if len(f.Categories) > 0 {
		c.Categories = append([]Category(nil), f.Categories...)
	}
	if f.Multiplier != nil {
		c.Multiplier = *f.Multiplier
	}
	if f.Output != "" {
		c.OutputPath = f.Output
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return c, fmt.Errorf("parsing timeout %q: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Locator != "" {
		c.Locator = f.Locator
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	return c, nil
}

// ApplyEnv overlays TREASURE_* environment variables onto c.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over it.
func ApplyEnv(c Config) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("loading .env: %w", err)
	}

	if v := os.Getenv(EnvMultiplier); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("parsing %s: %w", EnvMultiplier, err)
		}
		c.Multiplier = m
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.OutputPath = v
	}

	return c, nil
}

// Load builds the run configuration: defaults, then the YAML file, then the
// environment. An empty path falls back to DefaultConfigFile, which may be
// absent; an explicit path must exist.
func Load(path string) (Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
	}

	f, err := LoadFile(path)
	switch {
	case err == nil:
		if c, err = f.Apply(c); err != nil {
			return c, err
		}
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		// no default config file
	default:
		return c, fmt.Errorf("%s: %w", path, err)
	}

	c, err = ApplyEnv(c)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}
