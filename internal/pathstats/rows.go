// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package pathstats

const (
	indentUnit  = "    "
	descentMark = "↳ "
)

// Row is one line of the structure report. A summary row opens every
// simple path and is followed by one detail row per typed signature.
type Row struct {
	// Number is the 1-based sequence number of a summary row, zero on
	// detail rows.
	Number int

	// FieldPath is the simple path on summary rows and the indented typed
	// signature on detail rows.
	FieldPath string

	// MultiplePaths is only ever set on summary rows.
	MultiplePaths bool

	// MultipleValues is non-nil on detail rows of array nodes.
	MultipleValues *bool

	// Existing is the record count of a summary row.
	Existing int

	// Occurrence is the summed occurrence of a summary row or the
	// occurrence of one typed signature.
	Occurrence int
}

// Summary reports whether r opens a simple path.
func (r Row) Summary() bool { return r.Number > 0 }

// Rows renders the aggregated result ordered by simple path.
func (a *Aggregator) Rows() []Row {
	var rows []Row
	for i, e := range a.Entries() {
		rows = append(rows, Row{
			Number:        i + 1,
			FieldPath:     e.SimplePath,
			MultiplePaths: e.MultiplePaths(),
			Existing:      e.Existing,
			Occurrence:    e.Occurrence(),
		})

		for sig, s := range e.Paths.All() {
			prefix := indentUnit
			if s.ArrayElement {
				prefix += indentUnit
			}
			row := Row{
				FieldPath:  prefix + descentMark + sig,
				Occurrence: s.Occurrence,
			}
			if s.Array {
				mv := s.MultipleValues
				row.MultipleValues = &mv
			}
			rows = append(rows, row)
		}
	}
	return rows
}
