// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/slub/ldjstructurestats/internal/jsonvalue"
	"github.com/slub/ldjstructurestats/internal/pathstats"
	"github.com/slub/ldjstructurestats/internal/reader"
	"github.com/slub/ldjstructurestats/internal/report"
	"github.com/slub/ldjstructurestats/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv resolves the configuration environment variables.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ldjstructurestats",
		Short: "Structure statistics of line-delimited JSON records",
		Long: `Returns structure statistics from given line-delimited JSON records.

Reads line-delimited JSON records from stdin and writes the statistics of
every field path found in them as CSV to stdout. Gzip, zstd, lz4 and bzip2
compressed input is detected automatically. Fields are quoted only when
they contain a comma, a quote or a line break.

Configuration is read from the YAML file named by $LDJSTATS_CONFIG.
$LDJSTATS_LOG_LEVEL overrides the log level.`,
		Example: `  # Write the structure statistics of a record dump
  ldjstructurestats < records.ldj > structure.csv`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad(getenv),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runStats(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runStats(in io.Reader, out io.Writer, sess *session.Context) error {
	agg, err := collect(in, sess)
	if err != nil {
		return err
	}
	return report.Write(out, sess.Config.ReportFormat(), agg.Rows())
}

// collect traces and aggregates every record of in.
func collect(in io.Reader, sess *session.Context) (*pathstats.Aggregator, error) {
	log := sess.Logger

	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		log.Warn("reading records from a terminal, end input with Ctrl-D")
	}

	src, err := reader.Open(in)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	defer func() { _ = src.Close() }()

	if src.Codec != reader.None {
		log.Info("decompressing input", "codec", string(src.Codec))
	}

	agg := pathstats.NewAggregator()
	err = reader.Records(src, sess.Config.ReaderOptions(), func(line int, v jsonvalue.Value) error {
		paths := pathstats.Trace(v)
		log.Debug("traced record", "line", line, "paths", paths.Len())
		agg.Ingest(paths)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("profiled records",
		"records", agg.Records(),
		"paths", agg.Paths(),
		"shapes", agg.Shapes())

	return agg, nil
}
