// Package dispatch implements the buffer dispatcher (spec.md §4.E):
// the single public entry point that duplicates a buffer, reads its
// column-type tag, and returns an iterator.Iterator wired to the
// right decoder.
package dispatch

import (
	"encoding/binary"
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/compression"
	"github.com/arbordb/coldecode/iterator"
	"github.com/arbordb/coldecode/schema"
)

// byteOrder is the writer's chosen endianness, applied uniformly on
// read (spec.md §6). The layout has no per-buffer byte-order marker
// (flagged as an open hardening item in spec.md §9), so this is the
// one constant every reader and writer in this module must agree on.
var byteOrder = binary.LittleEndian

// NewIterator is the buffer dispatcher's single public entry point.
// It duplicates buf (an independent read cursor — the underlying
// bytes are never mutated), optionally unwraps a storage envelope,
// reads the column-type tag, and returns an iterator.Iterator that
// will lazily select the right decoder on first Next.
func NewIterator(buf []byte, opts ...Option) (*iterator.Iterator, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := unwrapEnvelope(buf, cfg.envelope)
	if err != nil {
		return nil, wrapSourceErr(cfg, err)
	}

	r := bits.NewReader(raw, byteOrder)
	colTag, err := r.ReadI32()
	if err != nil {
		return nil, wrapSourceErr(cfg, fmt.Errorf("reading column type tag: %s", err.Error()))
	}
	col, err := schema.ParseColumnType(colTag)
	if err != nil {
		return nil, wrapSourceErr(cfg, err)
	}

	return iterator.New(col, r, cfg.dictCache), nil
}

func wrapSourceErr(cfg *config, err error) error {
	if !cfg.hasSource {
		return err
	}
	return fmt.Errorf("source %s: %w", cfg.sourceID, err)
}

func unwrapEnvelope(buf []byte, e Envelope) ([]byte, error) {
	switch e {
	case EnvelopeNone:
		return buf, nil
	case EnvelopeLZ4:
		return compression.DecompressLZ4(buf)
	default:
		return nil, fmt.Errorf("dispatch: unknown envelope mode %d", e)
	}
}

// Summary is the result of Describe: the buffer's header, without
// constructing a decoder or consuming any value.
type Summary struct {
	ColumnType      schema.ColumnType
	CompressionType schema.CompressionType
	NullCount       int32
}

// Describe reads a buffer's header — column type, null count, and
// compression tag — without decoding any values, grounded in the
// teacher's io.HeaderReader.FromBytes, which reads a header
// independent of the value stream.
func Describe(buf []byte, opts ...Option) (Summary, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := unwrapEnvelope(buf, cfg.envelope)
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, err)
	}

	r := bits.NewReader(raw, byteOrder)

	colTag, err := r.ReadI32()
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, fmt.Errorf("reading column type tag: %s", err.Error()))
	}
	col, err := schema.ParseColumnType(colTag)
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, err)
	}

	nullCount, err := r.ReadI32()
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, fmt.Errorf("reading null count: %s", err.Error()))
	}
	if nullCount < 0 {
		return Summary{}, wrapSourceErr(cfg, fmt.Errorf("negative null count %d", nullCount))
	}
	for i := int32(0); i < nullCount; i++ {
		if _, err := r.ReadU32(); err != nil {
			return Summary{}, wrapSourceErr(cfg, fmt.Errorf("reading null index %d: %s", i, err.Error()))
		}
	}

	cmpTag, err := r.ReadI32()
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, fmt.Errorf("reading compression tag: %s", err.Error()))
	}
	cmp, err := schema.ParseCompressionType(cmpTag)
	if err != nil {
		return Summary{}, wrapSourceErr(cfg, err)
	}

	return Summary{ColumnType: col, CompressionType: cmp, NullCount: nullCount}, nil
}
