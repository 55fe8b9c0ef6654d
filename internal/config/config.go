// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package config handles ldjstructurestats run configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/slub/ldjstructurestats/internal/reader"
	"github.com/slub/ldjstructurestats/internal/report"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the ldjstructurestats configuration file.
type Config struct {
	Version int          `yaml:"version"`
	Report  ReportConfig `yaml:"report,omitempty"`
	Input   InputConfig  `yaml:"input,omitempty"`
	Log     LogConfig    `yaml:"log,omitempty"`
}

// ReportConfig controls the CSV layout.
type ReportConfig struct {
	// Format is "full" or "compact".
	Format string `yaml:"format,omitempty"`
}

// InputConfig controls line reading.
type InputConfig struct {
	SkipBlankLines bool `yaml:"skip_blank_lines,omitempty"`
	MaxLineBytes   int  `yaml:"max_line_bytes,omitempty"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Report:  ReportConfig{Format: string(report.Full)},
		Input:   InputConfig{MaxLineBytes: reader.DefaultMaxLineBytes},
		Log:     LogConfig{Level: "warn"},
	}
}

// Load reads a Config from a file path. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return err
	}
	if c.Input.MaxLineBytes < 0 {
		return errors.New("input.max_line_bytes must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ReportFormat returns the validated report format.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Report.Format)
	if err != nil {
		return report.Full
	}
	return f
}

// ReaderOptions returns the line reading options.
func (c *Config) ReaderOptions() reader.Options {
	return reader.Options{
		SkipBlankLines: c.Input.SkipBlankLines,
		MaxLineBytes:   c.Input.MaxLineBytes,
	}
}

// ParseLevel resolves a log level name. The empty name selects warn.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}
