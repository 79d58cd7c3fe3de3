// Package codec translates between wire data formats and record batches.
// Each codec registers a format name and a mime type; encoders take record
// batches and produce bytes, decoders do the reverse. Inputs are decoded
// incrementally, only formats whose layout demands it (the Arrow file seek
// table, Parquet footers) buffer the whole payload.
package codec

import (
	"io"
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/zeebo/errs"
)

// Error is the default codec error class.
var Error = errs.Class("codec")

// ErrDataLoss marks content that cannot be represented faithfully in the
// target schema: type mismatches, unknown columns, schema drift.
var ErrDataLoss = errs.Class("data loss")

// ErrUnsupportedFormat is returned for format names no codec claims.
var ErrUnsupportedFormat = errs.Class("unsupported format")

// BatchReader decodes a byte stream into record batches. Read returns
// io.EOF at end of input; every returned batch is owned by the caller.
type BatchReader interface {
	// Schema is available once the first batch was read, or immediately
	// for self-describing formats.
	Schema() *arrow.Schema
	Read() (arrow.Record, error)
	Release()
}

// BatchWriter encodes record batches onto a byte stream. Close flushes any
// trailing framing (for example the Arrow file footer).
type BatchWriter interface {
	Write(batch arrow.Record) error
	Close() error
}

// Codec is one data format implementation.
type Codec interface {
	// Format is the canonical format name, for example "CSV".
	Format() string
	// MimeType is the format's mime type on HTTP surfaces.
	MimeType() string
	// FileExtension is the conventional file extension, without dot.
	FileExtension() string

	// NewDecoder decodes from r. Formats without embedded schemas require
	// a schema; self-describing formats check r's schema against a
	// non-nil schema and fail with ErrDataLoss on drift.
	NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error)
	// NewEncoder encodes batches of the given schema onto w.
	NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error)
}

var registry = map[string]Codec{}

// Register adds a codec under its format name and mime type. Called from
// codec init functions.
func Register(c Codec) {
	registry[strings.ToUpper(c.Format())] = c
	registry[strings.ToLower(c.MimeType())] = c
}

// ForFormat resolves a format name or mime type to its codec.
func ForFormat(format string) (Codec, error) {
	if format == "" {
		return nil, ErrUnsupportedFormat.New("format not set")
	}
	if c, ok := registry[strings.ToUpper(format)]; ok {
		return c, nil
	}
	if c, ok := registry[strings.ToLower(format)]; ok {
		return c, nil
	}
	return nil, ErrUnsupportedFormat.New("%q", format)
}

// Formats lists the registered canonical format names.
func Formats() []string {
	var formats []string
	for key, c := range registry {
		if key == c.Format() {
			formats = append(formats, key)
		}
	}
	return formats
}

// defaultBatchRows is the row window for codecs that assemble batches
// themselves.
const defaultBatchRows = 1024
