// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Version", Value: "1.2.3"},
		{Label: "Commit", Value: "abc1234"},
	}, "")

	out := buf.String()
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc1234")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
