// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Package reader opens record streams, decompressing them when needed.
package reader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a compression format.
type Codec string

const (
	None  Codec = ""
	Gzip  Codec = "gzip"
	Zstd  Codec = "zstd"
	LZ4   Codec = "lz4"
	Bzip2 Codec = "bzip2"
)

var (
	bom = []byte{0xef, 0xbb, 0xbf}

	magics = []struct {
		codec Codec
		magic []byte
	}{
		{Gzip, []byte{0x1f, 0x8b}},
		{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
		{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
		{Bzip2, []byte("BZh")},
	}
)

// Detect returns the codec whose magic number prefixes head.
func Detect(head []byte) Codec {
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.codec
		}
	}
	return None
}

// Reader is a decompressed record stream.
type Reader struct {
	// Codec is the compression detected on the underlying stream.
	Codec Codec

	reader io.Reader
	close  func() error
}

// Read implements the io.Reader interface.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.reader.Read(buf)
}

// Close releases the decompressor. The underlying stream is left open.
func (r *Reader) Close() error {
	if r.close != nil {
		return r.close()
	}
	return nil
}

// Open wraps src, decompressing it if it starts with a known magic number
// and dropping a leading UTF-8 byte order mark.
func Open(src io.Reader) (*Reader, error) {
	br := bufio.NewReader(src)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}

	r := &Reader{Codec: Detect(head)}

	var plain io.Reader
	switch r.Codec {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Codec, err)
		}
		plain = gr
		r.close = gr.Close
	case Zstd:
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Codec, err)
		}
		plain = zr
		r.close = func() error {
			zr.Close()
			return nil
		}
	case LZ4:
		plain = lz4.NewReader(br)
	case Bzip2:
		plain = bzip2.NewReader(br)
	default:
		plain = br
	}

	text := bufio.NewReader(plain)
	if head, err := text.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = text.Discard(len(bom))
	}
	r.reader = text

	return r, nil
}
