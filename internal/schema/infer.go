// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package schema infers a JSON Schema from aggregated path statistics.
package schema

import (
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/slub/ldjstructurestats/internal/jsonvalue"
	"github.com/slub/ldjstructurestats/internal/pathstats"
)

// Draft is the dialect written to the root schema.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// kindTypes lists JSON Schema types in the order they are reported.
var kindTypes = []struct {
	kind jsonvalue.Kind
	name string
}{
	{jsonvalue.Mapping, "object"},
	{jsonvalue.Sequence, "array"},
	{jsonvalue.String, "string"},
	{jsonvalue.Integer, "integer"},
	{jsonvalue.Decimal, "number"},
	{jsonvalue.Boolean, "boolean"},
	{jsonvalue.Null, "null"},
}

type node struct {
	kinds map[jsonvalue.Kind]struct{}
	props map[string]*node
	items *node
}

func newNode() *node {
	return &node{kinds: make(map[jsonvalue.Kind]struct{})}
}

func (n *node) prop(key string) *node {
	if n.props == nil {
		n.props = make(map[string]*node)
	}
	child, ok := n.props[key]
	if !ok {
		child = newNode()
		n.props[key] = child
	}
	return child
}

func (n *node) elements() *node {
	if n.items == nil {
		n.items = newNode()
	}
	return n.items
}

// Infer builds a schema that every ingested record satisfies. Top-level
// properties present in every record are required.
func Infer(a *pathstats.Aggregator) *jsonschema.Schema {
	root := newNode()
	for _, e := range a.Entries() {
		for _, s := range e.Paths.All() {
			add(root, s.Path)
		}
	}

	out := root.schema()
	out.Schema = Draft

	if a.Records() > 0 && len(root.kinds) == 1 && out.Type == "object" {
		for key := range root.props {
			e, ok := a.Entry(pathstats.Path{
				{Key: pathstats.RootKey, Kind: jsonvalue.Mapping},
				{Key: key},
			}.Simple())
			if ok && e.Existing == a.Records() {
				out.Required = append(out.Required, key)
			}
		}
		sort.Strings(out.Required)
	}
	return out
}

func add(root *node, path pathstats.Path) {
	cur := root
	for i, seg := range path {
		switch {
		case i == 0:
		case seg.Element:
			cur = cur.elements()
		default:
			cur = cur.prop(seg.Key)
		}
		cur.kinds[seg.Kind] = struct{}{}
	}
}

func (n *node) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{}

	var types []string
	for _, kt := range kindTypes {
		if _, ok := n.kinds[kt.kind]; ok {
			types = append(types, kt.name)
		}
	}
	if len(types) == 1 {
		s.Type = types[0]
	} else {
		s.Types = types
	}

	if len(n.props) > 0 {
		s.Properties = make(map[string]*jsonschema.Schema, len(n.props))
		for key, child := range n.props {
			s.Properties[key] = child.schema()
		}
	}
	if n.items != nil {
		s.Items = n.items.schema()
	}
	return s
}
