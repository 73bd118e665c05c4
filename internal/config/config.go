// Package config loads the puzzlepipe settings. Defaults are overridden by an
// optional TOML file, which is overridden by PUZZLEPIPE_ environment
// variables (a double underscore separates nested keys, as in
// PUZZLEPIPE_FILESYSTEM__DISK_SIZE).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvPrefix = "PUZZLEPIPE_"

var ErrInvalid = errors.New("invalid configuration")

type Calories struct {
	TopK int `koanf:"top_k"`
}

type Markers struct {
	Packet  int `koanf:"packet"`
	Message int `koanf:"message"`
}

type Filesystem struct {
	DiskSize      uint64 `koanf:"disk_size"`
	RequiredSpace uint64 `koanf:"required_space"`
	SmallDirLimit uint64 `koanf:"small_dir_limit"`
}

type Config struct {
	InputDir     string `koanf:"input_dir"`
	InputPattern string `koanf:"input_pattern"`
	LogLevel     string `koanf:"log_level"`
	Strict       bool   `koanf:"strict"`
	Measure      bool   `koanf:"measure"`
	GraphDir     string `koanf:"graph_dir"`

	Calories   Calories   `koanf:"calories"`
	Markers    Markers    `koanf:"markers"`
	Filesystem Filesystem `koanf:"filesystem"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"input_dir":                  "resources",
		"input_pattern":              "day%d.txt",
		"log_level":                  "",
		"strict":                     false,
		"measure":                    false,
		"graph_dir":                  "",
		"calories.top_k":             3,
		"markers.packet":             4,
		"markers.message":            14,
		"filesystem.disk_size":       70000000,
		"filesystem.required_space":  30000000,
		"filesystem.small_dir_limit": 100000,
	}
}

// Default returns the configuration used when nothing overrides it.
func Default() (*Config, error) {
	return loadDefaults(koanf.New("."))
}

// Load layers defaults, the TOML file at path when path is not empty, and the
// environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := loadDefaults(k); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config from %s", path)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	return unmarshal(k)
}

// envKey maps PUZZLEPIPE_FILESYSTEM__DISK_SIZE to filesystem.disk_size.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func loadDefaults(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values puzzles cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Calories.TopK <= 0:
		return errors.Wrapf(ErrInvalid, "calories.top_k must be positive, got %d", c.Calories.TopK)
	case c.Markers.Packet <= 0 || c.Markers.Message <= 0:
		return errors.Wrapf(ErrInvalid, "marker widths must be positive, got %d and %d", c.Markers.Packet, c.Markers.Message)
	case c.Filesystem.RequiredSpace > c.Filesystem.DiskSize:
		return errors.Wrapf(ErrInvalid, "filesystem.required_space %d exceeds filesystem.disk_size %d",
			c.Filesystem.RequiredSpace, c.Filesystem.DiskSize)
	case strings.Count(c.InputPattern, "%d") != 1:
		return errors.Wrapf(ErrInvalid, "input_pattern %q must contain one %%d", c.InputPattern)
	}

	return nil
}

// InputPath returns the input file of day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
