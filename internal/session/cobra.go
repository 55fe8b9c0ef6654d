// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package session

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	ctx := cmd.Context()
	if ctx == nil {
		return nil
	}
	return From(ctx)
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sess := FromCommand(cmd)
	if sess == nil {
		return nil, errors.New("session not loaded")
	}
	return sess, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session
// and stores it in the command's context.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, err := Load(parent, getenv, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
