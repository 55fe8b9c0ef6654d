// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package report writes structure statistics as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slub/ldjstructurestats/internal/pathstats"
)

// Format selects the column layout of the report.
type Format string

const (
	// Full reports multiple_paths and separates existing from occurrence.
	Full Format = "full"
	// Compact drops multiple_paths and reports a single count column.
	Compact Format = "compact"
)

// Formats lists the supported formats.
var Formats = []Format{Full, Compact}

// ParseFormat resolves a format name. The empty name selects Full.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", Full:
		return Full, nil
	case Compact:
		return Compact, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown report format %q (supported: %s)", name, strings.Join(names, ", "))
}

const (
	colNumber         = "path_number"
	colFieldPath      = "field_path"
	colMultiplePaths  = "multiple_paths"
	colMultipleValues = "multiple_values"
	colExisting       = "path_existing"
	colOccurrence     = "path_occurrence"
)

// Header returns the column names of f.
func (f Format) Header() []string {
	if f == Compact {
		return []string{colNumber, colFieldPath, colMultipleValues, colExisting}
	}
	return []string{colNumber, colFieldPath, colMultiplePaths, colMultipleValues, colExisting, colOccurrence}
}

// Record renders one row in the layout of f.
func (f Format) Record(r pathstats.Row) []string {
	var number, multiplePaths, multipleValues, existing, occurrence string

	if r.Summary() {
		number = strconv.Itoa(r.Number)
		existing = strconv.Itoa(r.Existing)
		if r.MultiplePaths {
			multiplePaths = formatBool(true)
		}
	}
	if r.MultipleValues != nil {
		multipleValues = formatBool(*r.MultipleValues)
	}
	occurrence = strconv.Itoa(r.Occurrence)

	if f == Compact {
		if !r.Summary() {
			existing = occurrence
		}
		return []string{number, r.FieldPath, multipleValues, existing}
	}
	return []string{number, r.FieldPath, multiplePaths, multipleValues, existing, occurrence}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Write emits the header and all rows as CSV with "\n" line endings.
func Write(w io.Writer, f Format, rows []pathstats.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Header()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(f.Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
