// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package pathstats

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/slub/ldjstructurestats/internal/jsonvalue"
)

// Entry holds the merged statistics of one simple path.
type Entry struct {
	SimplePath string

	// Paths holds the typed variants of the simple path.
	Paths *PathMap

	// Existing counts the records containing the simple path.
	Existing int
}

// Occurrence sums the occurrences of all typed variants not reached
// through an array.
func (e *Entry) Occurrence() int {
	var n int
	for _, s := range e.Paths.All() {
		if !s.ArrayElement {
			n += s.Occurrence
		}
	}
	return n
}

// MultiplePaths reports whether the simple path occurs more often than
// the number of records containing it.
func (e *Entry) MultiplePaths() bool {
	return e.Existing < e.Occurrence()
}

// Aggregator folds per-record path maps into a result keyed by simple path.
// It is not safe for concurrent use.
type Aggregator struct {
	entries map[string]*Entry
	shapes  map[uint64]struct{}
	records int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		entries: make(map[string]*Entry),
		shapes:  make(map[uint64]struct{}),
	}
}

// Ingest merges the typed paths of one record.
func (a *Aggregator) Ingest(rec *PathMap) {
	a.records++
	a.shapes[fingerprint(rec)] = struct{}{}

	// Simple paths already counted as existing for this record.
	seen := make(map[string]struct{})

	for _, s := range rec.All() {
		simple := s.Path.Simple()
		_, counted := seen[simple]
		if !s.ArrayElement {
			seen[simple] = struct{}{}
		}

		e, ok := a.entries[simple]
		if !ok {
			e = &Entry{SimplePath: simple, Paths: NewPathMap(), Existing: 1}
			e.Paths.Add(s)
			a.entries[simple] = e
			seen[simple] = struct{}{}
			continue
		}

		if !counted && !s.ArrayElement {
			e.Existing++
		}
		e.Paths.Add(s)
	}
}

// IngestValue traces one record and ingests its paths.
func (a *Aggregator) IngestValue(v jsonvalue.Value) {
	a.Ingest(Trace(v))
}

// Records returns the number of ingested records.
func (a *Aggregator) Records() int { return a.records }

// Paths returns the number of distinct simple paths.
func (a *Aggregator) Paths() int { return len(a.entries) }

// Shapes returns the number of distinct record shapes, where a shape is
// the set of typed signatures of a record.
func (a *Aggregator) Shapes() int { return len(a.shapes) }

// Entry returns the entry of a simple path.
func (a *Aggregator) Entry(simple string) (*Entry, bool) {
	e, ok := a.entries[simple]
	return e, ok
}

// Entries returns all entries sorted by simple path.
func (a *Aggregator) Entries() []*Entry {
	keys := make([]string, 0, len(a.entries))
	for k := range a.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*Entry, len(keys))
	for i, k := range keys {
		out[i] = a.entries[k]
	}
	return out
}

func fingerprint(rec *PathMap) uint64 {
	sigs := make([]string, 0, rec.Len())
	for sig := range rec.All() {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)

	d := xxhash.New()
	for _, sig := range sigs {
		_, _ = d.WriteString(sig)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
