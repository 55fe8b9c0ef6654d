// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/slub/ldjstructurestats/internal/jsonvalue"
)

// ErrInvalidJSON indicates an input line that is not a JSON document.
var ErrInvalidJSON = errors.New("invalid JSON")

// DefaultMaxLineBytes bounds the length of a single input line.
const DefaultMaxLineBytes = 64 << 20

// Options controls how lines are read.
type Options struct {
	// SkipBlankLines ignores lines holding only whitespace instead of
	// rejecting them as invalid JSON.
	SkipBlankLines bool

	// MaxLineBytes bounds a single line; zero means DefaultMaxLineBytes.
	MaxLineBytes int
}

// Records decodes r line by line and calls fn with the 1-based line number
// and the decoded document of every line. It stops at the first error.
func Records(r io.Reader, opts Options, fn func(line int, v jsonvalue.Value) error) error {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)

	var n int
	for s.Scan() {
		n++
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 && opts.SkipBlankLines {
			continue
		}
		if !utf8.Valid(line) {
			return fmt.Errorf("%w: line %d: invalid UTF-8", ErrInvalidJSON, n)
		}

		v, err := jsonvalue.Decode(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidJSON, n, err)
		}
		if err := fn(n, v); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}
	return nil
}
