// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the sparsematrix shell and CLI.
//
// A missing file is not an error: Default() is used. Values present in the
// file override the defaults field by field; the result is validated with
// struct tags before use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Pretty output modes.
const (
	PrettyAuto   = "auto"   // styled output only when the writer is a terminal
	PrettyAlways = "always" // always styled
	PrettyNever  = "never"  // always plain rows
)

// Default values.
const (
	DefaultRows     = 3
	DefaultCols     = 3
	DefaultLogLevel = "warn"
	DefaultPrompt   = "> "
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the top-level configuration document.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Matrix sets the shape and policy of matrices the shell creates.
	Matrix MatrixConfig `yaml:"matrix"`

	// Shell tunes the interactive loop.
	Shell ShellConfig `yaml:"shell"`
}

// MatrixConfig describes the two session matrices created at startup.
type MatrixConfig struct {
	Rows           int  `yaml:"rows" validate:"gte=1"`
	Cols           int  `yaml:"cols" validate:"gte=1"`
	Capacity       int  `yaml:"capacity" validate:"gte=0"`
	ValidateNaNInf bool `yaml:"validate_nan_inf"`
}

// ShellConfig tunes prompt and rendering.
type ShellConfig struct {
	Prompt string `yaml:"prompt"`
	Pretty string `yaml:"pretty" validate:"oneof=auto always never"`
}

var configValidate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Matrix: MatrixConfig{
			Rows:           DefaultRows,
			Cols:           DefaultCols,
			ValidateNaNInf: sparse.DefaultValidateNaNInf,
		},
		Shell: ShellConfig{
			Prompt: DefaultPrompt,
			Pretty: PrettyAuto,
		},
	}
}

// Load reads path on top of Default(). An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse unmarshals data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML, used by "sparsematrix config" to dump the
// effective configuration.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to Warn.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// MatrixOptions converts the matrix section to engine options.
func (c Config) MatrixOptions() []sparse.Option {
	return []sparse.Option{
		sparse.WithCapacity(c.Matrix.Capacity),
		sparse.WithValidateNaNInf(c.Matrix.ValidateNaNInf),
	}
}
