// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package jsonvalue provides an order-preserving JSON value model.
package jsonvalue

import (
	"encoding/json"
	"iter"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Kind is the runtime kind of a JSON value.
type Kind int

const (
	Null Kind = iota
	Boolean
	Integer
	Decimal
	String
	Sequence
	Mapping
)

var kindNames = [...]string{
	Null:     "null",
	Boolean:  "boolean",
	Integer:  "integer",
	Decimal:  "decimal",
	String:   "string",
	Sequence: "sequence",
	Mapping:  "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is a decoded JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members *sequencedmap.Map[string, Value]
}

// Member is a key-value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: Boolean, boolean: b} }

// Str returns a JSON string.
func Str(s string) Value { return Value{kind: String, text: s} }

// Number returns an Integer for literals without a fraction or exponent
// and a Decimal otherwise.
func Number(n json.Number) Value {
	if strings.ContainsAny(string(n), ".eE") {
		return Value{kind: Decimal, text: string(n)}
	}
	return Value{kind: Integer, text: string(n)}
}

// Array returns a JSON array holding items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Sequence, items: items}
}

// Object returns a JSON object with members in the given order.
// A repeated key keeps its first position and takes the last value.
func Object(members ...Member) Value {
	m := sequencedmap.New[string, Value]()
	for _, mb := range members {
		m.Set(mb.Key, mb.Value)
	}
	return Value{kind: Mapping, members: m}
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.boolean }

// Text returns the string payload, or the number literal for numbers.
func (v Value) Text() string { return v.text }

// Len returns the number of array elements or object members.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.items)
	case Mapping:
		if v.members == nil {
			return 0
		}
		return v.members.Len()
	default:
		return 0
	}
}

// Items returns the elements of an array in order.
func (v Value) Items() []Value { return v.items }

// Members iterates over the members of an object in insertion order.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.members == nil {
			return
		}
		for k, mv := range v.members.All() {
			if !yield(k, mv) {
				return
			}
		}
	}
}

// Get returns the member value stored under key.
func (v Value) Get(key string) (Value, bool) {
	if v.members == nil {
		return Value{}, false
	}
	return v.members.Get(key)
}
