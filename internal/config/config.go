package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const ConfigFile = "nativelib.toml"

var ErrConfigNotFound = errors.New("config file not found")

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultLeft       uint64 = 42
	DefaultRight      uint64 = 58
	DefaultCycles            = 10000
	DefaultWorkers           = 8
	DefaultIterations        = 1000
)

// Config represents the nativelib.toml configuration file.
type Config struct {
	Demo   Demo   `toml:"demo"`
	Soak   Soak   `toml:"soak"`
	Stress Stress `toml:"stress"`
}

// Demo holds the operands used by the demo and add commands.
type Demo struct {
	Left  uint64 `toml:"left"`
	Right uint64 `toml:"right"`
}

// Soak configures the allocate/release leak check.
type Soak struct {
	Cycles int `toml:"cycles"`
}

// Stress configures the concurrent call check.
type Stress struct {
	Workers    int `toml:"workers"`
	Iterations int `toml:"iterations"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		Demo:   Demo{Left: DefaultLeft, Right: DefaultRight},
		Soak:   Soak{Cycles: DefaultCycles},
		Stress: Stress{Workers: DefaultWorkers, Iterations: DefaultIterations},
	}
}

// Load loads configuration from path, or searches upward from cwd.
// Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		if path = findConfig(); path == "" {
			return nil, ErrConfigNotFound
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when no file exists.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks counts are positive.
func (c *Config) Validate() error {
	switch {
	case c.Soak.Cycles <= 0:
		return fmt.Errorf("soak.cycles must be positive, got %d", c.Soak.Cycles)
	case c.Stress.Workers <= 0:
		return fmt.Errorf("stress.workers must be positive, got %d", c.Stress.Workers)
	case c.Stress.Iterations <= 0:
		return fmt.Errorf("stress.iterations must be positive, got %d", c.Stress.Iterations)
	}
	return nil
}

func findConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for dir := cwd; ; {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
