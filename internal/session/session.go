// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package session provides run context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/slub/ldjstructurestats/internal/config"
)

var (
	// ErrConfigNotFound indicates the configured config file doesn't exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

const (
	// ConfigEnv names the environment variable holding the config file path.
	ConfigEnv = "LDJSTATS_CONFIG"

	// LogLevelEnv names the environment variable overriding log.level.
	LogLevelEnv = "LDJSTATS_LOG_LEVEL"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and the diagnostics logger.
type Context struct {
	// Config is the validated configuration.
	Config *config.Config

	// Logger writes diagnostics to stderr.
	Logger *slog.Logger
}

// Load resolves the run configuration from the environment and returns a
// new context.Context with the session Context stored in it.
func Load(ctx context.Context, getenv func(string) string, stderr io.Writer) (context.Context, error) {
	cfg := config.Default()

	if path := getenv(ConfigEnv); path != "" {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
	}

	if lvl := getenv(LogLevelEnv); lvl != "" {
		cfg.Log.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sess := &Context{
		Config: cfg,
		Logger: logger,
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
