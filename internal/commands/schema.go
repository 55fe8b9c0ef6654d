// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/slub/ldjstructurestats/internal/schema"
	"github.com/slub/ldjstructurestats/internal/session"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Infer a JSON Schema from line-delimited JSON records",
		Long: `Infer a JSON Schema (draft 2020-12) satisfied by every record read from stdin.
Top-level fields present in all records are marked as required.`,
		Example: `  # Infer the schema of a record dump
  ldjstructurestats schema < records.ldj > records.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runSchema(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}
	return cmd
}

func runSchema(in io.Reader, out io.Writer, sess *session.Context) error {
	agg, err := collect(in, sess)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(schema.Infer(agg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
