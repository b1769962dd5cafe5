// Package config resolves polarpick settings from defaults, a YAML file and
// the environment. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/polarpick/internal/colour"
	"github.com/jmylchreest/polarpick/internal/picker"
)

// ErrInvalidSize is returned when the wheel would have no drawable radius.
var ErrInvalidSize = errors.New("invalid wheel size")

// Environment variables consulted by ApplyEnv.
const (
	EnvSize   = "POLARPICK_SIZE"
	EnvValue  = "POLARPICK_VALUE"
	EnvBorder = "POLARPICK_BORDER"
)

// MinSize is the smallest diameter that leaves a visible wheel inside the margin.
const MinSize = 2*picker.Margin + 2

// Config holds the settings shared by the CLI and the desktop app.
type Config struct {
	Size   int    `yaml:"size"`
	Value  string `yaml:"value"`
	Border string `yaml:"border"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:   picker.DefaultSize,
		Value:  "#ffffff",
		Border: "#cccccc",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "polarpick", "config.yaml"), nil
}

// Load resolves settings from defaults, the YAML file and the environment.
// An empty path uses DefaultPath, where a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from POLARPICK_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", EnvSize, ErrInvalidSize, v)
		}
		c.Size = size
	}
	if v := os.Getenv(EnvValue); v != "" {
		c.Value = v
	}
	if v := os.Getenv(EnvBorder); v != "" {
		c.Border = v
	}
	return nil
}

// Validate checks that the size is drawable and both colours parse.
func (c Config) Validate() error {
	if c.Size < MinSize {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, c.Size, MinSize)
	}
	if _, ok := colour.HexToRGB(c.Value); !ok {
		return fmt.Errorf("invalid value colour %q", c.Value)
	}
	if _, ok := colour.HexToRGB(c.Border); !ok {
		return fmt.Errorf("invalid border colour %q", c.Border)
	}
	return nil
}

// BorderRGB returns the parsed border colour, falling back to the default stroke.
func (c Config) BorderRGB() colour.RGB {
	if rgb, ok := colour.HexToRGB(c.Border); ok {
		return rgb
	}
	return colour.ToRGB(picker.DefaultBorder)
}
