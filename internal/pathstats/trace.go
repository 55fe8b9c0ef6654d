// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package pathstats

import (
	"iter"

	"github.com/slub/ldjstructurestats/internal/jsonvalue"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Statistic describes one typed path.
type Statistic struct {
	Path Path

	// Occurrence counts how often the path was reached.
	Occurrence int

	// Array is set when the value at the path is an array.
	Array bool

	// ArrayElement is set when the path was reached through an array.
	ArrayElement bool

	// MultipleValues is set when the array held more than one element.
	MultipleValues bool

	sig string
}

// Signature returns the typed signature of the statistic's path.
func (s *Statistic) Signature() string {
	if s.sig == "" {
		s.sig = s.Path.Signature()
	}
	return s.sig
}

func (s *Statistic) clone() *Statistic {
	c := *s
	return &c
}

// absorb sums occurrences and ORs the flags of o into s.
func (s *Statistic) absorb(o *Statistic) {
	s.Occurrence += o.Occurrence
	s.Array = s.Array || o.Array
	s.ArrayElement = s.ArrayElement || o.ArrayElement
	s.MultipleValues = s.MultipleValues || o.MultipleValues
}

// PathMap is an insertion-ordered set of statistics keyed by typed signature.
type PathMap struct {
	m *sequencedmap.Map[string, *Statistic]
}

// NewPathMap returns an empty PathMap.
func NewPathMap() *PathMap {
	return &PathMap{m: sequencedmap.New[string, *Statistic]()}
}

// Add inserts a copy of s, or absorbs s into the statistic already stored
// under the same signature.
func (pm *PathMap) Add(s *Statistic) {
	sig := s.Signature()
	if cur, ok := pm.m.Get(sig); ok {
		cur.absorb(s)
		return
	}
	pm.m.Set(sig, s.clone())
}

// Merge adds every statistic of o to pm.
func (pm *PathMap) Merge(o *PathMap) {
	for _, s := range o.All() {
		pm.Add(s)
	}
}

// Get returns the statistic stored under sig.
func (pm *PathMap) Get(sig string) (*Statistic, bool) {
	return pm.m.Get(sig)
}

// Len returns the number of distinct signatures.
func (pm *PathMap) Len() int {
	return pm.m.Len()
}

// All iterates over the statistics in insertion order.
func (pm *PathMap) All() iter.Seq2[string, *Statistic] {
	return func(yield func(string, *Statistic) bool) {
		for sig, s := range pm.m.All() {
			if !yield(sig, s) {
				return
			}
		}
	}
}

// Trace returns the typed paths of one record.
func Trace(v jsonvalue.Value) *PathMap {
	return trace(v, nil, Segment{Key: RootKey, Kind: v.Kind()})
}

// trace builds a fresh map for the subtree rooted at v. The node itself is
// always the first entry.
func trace(v jsonvalue.Value, prefix Path, seg Segment) *PathMap {
	path := prefix.with(seg)
	node := &Statistic{
		Path:         path,
		Occurrence:   1,
		ArrayElement: seg.Element,
		sig:          path.Signature(),
	}
	if v.Kind() == jsonvalue.Sequence {
		node.Array = true
		node.MultipleValues = v.Len() > 1
	}

	paths := NewPathMap()
	paths.Add(node)

	switch v.Kind() {
	case jsonvalue.Mapping:
		for key, child := range v.Members() {
			paths.Merge(trace(child, path, Segment{Key: key, Kind: child.Kind()}))
		}
	case jsonvalue.Sequence:
		for _, item := range v.Items() {
			paths.Merge(trace(item, path, Segment{Kind: item.Kind(), Element: true}))
		}
	}
	return paths
}
