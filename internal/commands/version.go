// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package commands

import (
	"github.com/slub/ldjstructurestats/internal/ui"
	"github.com/slub/ldjstructurestats/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Show the version
  ldjstructurestats version`,
		Args: cobra.NoArgs,
		// Version information needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			b := version.Get()
			ui.PrintResult(cmd.OutOrStdout(), []ui.ResultField{
				{Label: "Version", Value: b.Version},
				{Label: "Commit", Value: b.Commit},
				{Label: "Built", Value: b.Date},
				{Label: "Go", Value: b.Go},
			}, "")
			return nil
		},
	}
	return cmd
}
