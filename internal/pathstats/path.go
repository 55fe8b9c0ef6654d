// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package pathstats discovers the structural paths of JSON records and
// aggregates their statistics across a stream of records.
package pathstats

import (
	"fmt"
	"strings"

	"github.com/slub/ldjstructurestats/internal/jsonvalue"
)

// RootKey is the key of the first segment of every path.
const RootKey = "."

// glyphs renders the kind of a segment inside a typed signature.
var glyphs = map[jsonvalue.Kind]string{
	jsonvalue.Mapping:  "{}",
	jsonvalue.Sequence: "[]",
	jsonvalue.Integer:  "(Integer)",
	jsonvalue.String:   "(String)",
	jsonvalue.Decimal:  "(Decimal)",
	jsonvalue.Boolean:  "(Boolean)",
	jsonvalue.Null:     "(no object type)",
}

// Glyph returns the signature rendering of kind.
func Glyph(kind jsonvalue.Kind) string {
	g, ok := glyphs[kind]
	if !ok {
		panic(fmt.Sprintf("pathstats: no glyph for kind %d", kind))
	}
	return g
}

// Segment is one step of a path. Array elements have no key of their own.
type Segment struct {
	Key     string
	Kind    jsonvalue.Kind
	Element bool
}

// Path is the list of segments from the record root to one value.
type Path []Segment

// with returns a copy of p extended by seg.
func (p Path) with(seg Segment) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = seg
	return next
}

// Signature renders p with its kinds. Array element kinds decorate the
// rendering of the preceding segment, e.g. `"." {} > "tags" [] (Integer)`.
func (p Path) Signature() string {
	parts := make([]string, 0, len(p))
	for _, seg := range p {
		g := Glyph(seg.Kind)
		if seg.Element && len(parts) > 0 {
			parts[len(parts)-1] += " " + g
			continue
		}
		parts = append(parts, `"`+seg.Key+`" `+g)
	}
	return strings.Join(parts, " > ")
}

// Simple renders the dotted key path of p without kinds or array elements.
// The root is "." and a top-level field "a" is ".a".
func (p Path) Simple() string {
	keys := make([]string, 0, len(p))
	for _, seg := range p {
		if !seg.Element {
			keys = append(keys, seg.Key)
		}
	}
	s := strings.Join(keys, ".")
	if strings.HasPrefix(s, "..") {
		return s[1:]
	}
	return s
}
