// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package pathstats

import (
	"testing"

	"github.com/slub/ldjstructurestats/internal/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

func signatures(pm *PathMap) []string {
	var out []string
	for sig := range pm.All() {
		out = append(out, sig)
	}
	return out
}

func TestTrace_Scalar(t *testing.T) {
	pm := Trace(mustDecode(t, `42`))

	require.Equal(t, 1, pm.Len())
	s, ok := pm.Get(`"." (Integer)`)
	require.True(t, ok)
	assert.Equal(t, 1, s.Occurrence)
	assert.False(t, s.Array)
	assert.False(t, s.ArrayElement)
}

func TestTrace_ObjectOrder(t *testing.T) {
	pm := Trace(mustDecode(t, `{"z": 1, "a": {"m": "x", "b": null}, "f": 1.5, "t": true}`))

	assert.Equal(t, []string{
		`"." {}`,
		`"." {} > "z" (Integer)`,
		`"." {} > "a" {}`,
		`"." {} > "a" {} > "m" (String)`,
		`"." {} > "a" {} > "b" (no object type)`,
		`"." {} > "f" (Decimal)`,
		`"." {} > "t" (Boolean)`,
	}, signatures(pm))
}

func TestTrace_ArrayOfScalars(t *testing.T) {
	pm := Trace(mustDecode(t, `{"tags": [1, 2, 3]}`))

	arr, ok := pm.Get(`"." {} > "tags" []`)
	require.True(t, ok)
	assert.True(t, arr.Array)
	assert.True(t, arr.MultipleValues)
	assert.False(t, arr.ArrayElement)
	assert.Equal(t, 1, arr.Occurrence)

	elem, ok := pm.Get(`"." {} > "tags" [] (Integer)`)
	require.True(t, ok)
	assert.True(t, elem.ArrayElement)
	assert.Equal(t, 3, elem.Occurrence)
}

func TestTrace_EmptyContainers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty object", input: `{}`, want: []string{`"." {}`}},
		{name: "empty array", input: `[]`, want: []string{`"." []`}},
		{name: "empty nested array", input: `{"tags": []}`, want: []string{`"." {}`, `"." {} > "tags" []`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := Trace(mustDecode(t, tt.input))
			assert.Equal(t, tt.want, signatures(pm))
		})
	}

	pm := Trace(mustDecode(t, `{"tags": []}`))
	arr, ok := pm.Get(`"." {} > "tags" []`)
	require.True(t, ok)
	assert.True(t, arr.Array)
	assert.False(t, arr.MultipleValues)
}

func TestTrace_SingleElementArray(t *testing.T) {
	pm := Trace(mustDecode(t, `{"tags": ["a"]}`))

	arr, ok := pm.Get(`"." {} > "tags" []`)
	require.True(t, ok)
	assert.False(t, arr.MultipleValues)
}

func TestTrace_NestedArraysSumAndOr(t *testing.T) {
	pm := Trace(mustDecode(t, `{"a": [[1], [2, 3]]}`))

	outer, ok := pm.Get(`"." {} > "a" []`)
	require.True(t, ok)
	assert.True(t, outer.MultipleValues)

	inner, ok := pm.Get(`"." {} > "a" [] []`)
	require.True(t, ok)
	assert.Equal(t, 2, inner.Occurrence)
	assert.True(t, inner.Array)
	assert.True(t, inner.ArrayElement)
	assert.True(t, inner.MultipleValues, "second inner array has two elements")

	leaf, ok := pm.Get(`"." {} > "a" [] [] (Integer)`)
	require.True(t, ok)
	assert.Equal(t, 3, leaf.Occurrence)
}

func TestTrace_ObjectsInArray(t *testing.T) {
	pm := Trace(mustDecode(t, `{"a": [{"b": 1}, {"b": 2, "c": "x"}]}`))

	assert.Equal(t, []string{
		`"." {}`,
		`"." {} > "a" []`,
		`"." {} > "a" [] {}`,
		`"." {} > "a" [] {} > "b" (Integer)`,
		`"." {} > "a" [] {} > "c" (String)`,
	}, signatures(pm))

	b, ok := pm.Get(`"." {} > "a" [] {} > "b" (Integer)`)
	require.True(t, ok)
	assert.Equal(t, 2, b.Occurrence)
	assert.False(t, b.ArrayElement)
}

func TestTrace_MixedArray(t *testing.T) {
	pm := Trace(mustDecode(t, `[1, "x", null, 2]`))

	assert.Equal(t, []string{
		`"." []`,
		`"." [] (Integer)`,
		`"." [] (String)`,
		`"." [] (no object type)`,
	}, signatures(pm))

	ints, _ := pm.Get(`"." [] (Integer)`)
	assert.Equal(t, 2, ints.Occurrence)
}

func TestTrace_SameKeyDifferentDepths(t *testing.T) {
	pm := Trace(mustDecode(t, `{"a": {"a": 1}}`))

	assert.Equal(t, []string{
		`"." {}`,
		`"." {} > "a" {}`,
		`"." {} > "a" {} > "a" (Integer)`,
	}, signatures(pm))
}

func TestPathMap_AddCopies(t *testing.T) {
	src := &Statistic{Path: Path{{Key: RootKey, Kind: jsonvalue.String}}, Occurrence: 1}

	pm := NewPathMap()
	pm.Add(src)
	pm.Add(src)

	got, ok := pm.Get(`"." (String)`)
	require.True(t, ok)
	assert.Equal(t, 2, got.Occurrence)
	assert.Equal(t, 1, src.Occurrence, "source statistic must stay untouched")
}

func TestStatistic_SignatureCached(t *testing.T) {
	s := &Statistic{Path: Path{{Key: RootKey, Kind: jsonvalue.String}}}
	assert.Equal(t, `"." (String)`, s.Signature())

	s.Path[0].Kind = jsonvalue.Integer
	assert.Equal(t, `"." (String)`, s.Signature(), "signature is rendered once")
}

func TestTrace_SignaturesRenderedOnCreation(t *testing.T) {
	pm := Trace(mustDecode(t, `{"a":[[{"b":null}]]}`))
	for sig, s := range pm.All() {
		assert.Equal(t, sig, s.sig)
		assert.Equal(t, s.Path.Signature(), s.sig)
	}
}
