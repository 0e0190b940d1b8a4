package iterator_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/decode"
	"github.com/arbordb/coldecode/iterator"
	"github.com/arbordb/coldecode/schema"
)

// buildIntBuffer writes a DEFAULT-compressed INT column body: no
// nulls, compression tag 0, then the raw values.
func buildIntBuffer(values []int32) []byte {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(0) // null count
	w.PutInt32(int32(schema.DefaultCompression))
	for _, v := range values {
		w.PutInt32(v)
	}
	return w.Bytes()
}

func TestIteratorIntDefaultNoNulls(t *testing.T) {
	buf := buildIntBuffer([]int32{7, -3, 0, 2147483647})
	r := bits.NewReader(buf, binary.LittleEndian)
	it := iterator.New(schema.IntType, r, nil)

	want := []int32{7, -3, 0, 2147483647}
	for i, v := range want {
		if !it.HasNext() {
			t.Fatalf("row %d: expected HasNext true", i)
		}
		if err := it.Next(); err != nil {
			t.Fatalf("row %d: %s", i, err)
		}
		cell, isNull := it.Current()
		if isNull {
			t.Fatalf("row %d: unexpected null", i)
		}
		if int32(cell.I64) != v {
			t.Errorf("row %d: got %d want %d", i, cell.I64, v)
		}

		cell2, isNull2 := it.Current()
		if isNull2 != isNull || cell2.I64 != cell.I64 {
			t.Errorf("row %d: Current() not idempotent", i)
		}
	}
	if it.HasNext() {
		t.Error("expected HasNext false after draining buffer")
	}
	if err := it.Next(); !errors.Is(err, decode.ErrMisuse) {
		t.Errorf("expected ErrMisuse past exhaustion, got %v", err)
	}
}

func TestIteratorMalformedCompressionTag(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(0)  // null count
	w.PutInt32(99) // unknown compression tag

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	it := iterator.New(schema.IntType, r, nil)

	if err := it.Next(); err == nil {
		t.Fatal("expected an UnknownCompressionType error")
	} else if !errors.Is(err, schema.ErrUnknownCompressionType) {
		t.Errorf("expected ErrUnknownCompressionType, got %v", err)
	}

	// Iterator must now be poisoned: every further call fails.
	if it.HasNext() {
		t.Error("expected HasNext false on a poisoned iterator")
	}
	if err := it.Next(); !errors.Is(err, iterator.ErrPoisoned) {
		t.Errorf("expected ErrPoisoned, got %v", err)
	}

	if dump := it.DumpContext(16); dump == "" {
		t.Error("expected a non-empty diagnostic dump for a poisoned iterator")
	}
}

// TestIteratorCurrentRefusesAfterMidStreamPoison poisons the iterator
// after it has already cached a good row — a truncated trailing value
// that HasNext (buffer has remaining bytes) reports as present but
// Next fails to decode — and checks Current refuses rather than
// replaying the stale cached row (spec.md §7).
func TestIteratorCurrentRefusesAfterMidStreamPoison(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(0) // null count
	w.PutInt32(int32(schema.DefaultCompression))
	w.PutInt32(5)     // one good row
	w.WriteByte(0xFF) // one stray byte: not enough for another int32

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	it := iterator.New(schema.IntType, r, nil)

	if !it.HasNext() {
		t.Fatal("expected a first row")
	}
	if err := it.Next(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cell, isNull := it.Current(); isNull || cell.I64 != 5 {
		t.Fatalf("got %v (null=%v) want 5", cell, isNull)
	}

	if !it.HasNext() {
		t.Fatal("expected HasNext true: the stray byte still counts as remaining")
	}
	if err := it.Next(); err == nil {
		t.Fatal("expected the truncated trailing value to fail to decode")
	} else if !errors.Is(err, decode.ErrMalformedBuffer) {
		t.Errorf("expected ErrMalformedBuffer, got %v", err)
	}

	if cell, isNull := it.Current(); cell != nil || isNull {
		t.Errorf("expected Current to refuse after poisoning, got %v (null=%v)", cell, isNull)
	}
}
