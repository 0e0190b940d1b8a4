package decode_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/decode"
	"github.com/arbordb/coldecode/schema"
)

// TestNewSelectsDefaultDecoder exercises decode.New directly, the
// cache-free entry point a caller reaches for when it already knows
// the buffer holds no DICT column (spec.md §4.B).
func TestNewSelectsDefaultDecoder(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(9)

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	dec, err := decode.New(schema.IntType, schema.DefaultCompression, r)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !dec.HasNext() {
		t.Fatal("expected one row")
	}
	cell, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cell.I64 != 9 {
		t.Errorf("got %d want 9", cell.I64)
	}
}

func TestNewRejectsIncompatibleEncoding(t *testing.T) {
	r := bits.NewReader(nil, binary.LittleEndian)
	_, err := decode.New(schema.StringType, schema.ByteDeltaCompression, r)
	if !errors.Is(err, schema.ErrIncompatibleEncoding) {
		t.Errorf("expected ErrIncompatibleEncoding, got %v", err)
	}
}

func TestNewRejectsUnknownCompressionTag(t *testing.T) {
	r := bits.NewReader(nil, binary.LittleEndian)
	_, err := decode.New(schema.IntType, schema.CompressionType(99), r)
	if !errors.Is(err, schema.ErrUnknownCompressionType) {
		t.Errorf("expected ErrUnknownCompressionType, got %v", err)
	}
}
