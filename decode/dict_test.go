package decode

import (
	"encoding/binary"
	"testing"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

func TestDictDecoderString(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()

	dict := []string{"a", "b"}
	w.PutInt32(int32(len(dict)))
	for _, s := range dict {
		w.PutLengthPrefixed([]byte(s))
	}
	codes := []int16{0, 1, 0, 1}
	for _, c := range codes {
		w.PutInt16(c)
	}

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	dec, err := newDictDecoder(schema.StringType, r)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []string{"a", "b", "a", "b"}
	for i, w := range want {
		cell, err := dec.Next()
		if err != nil {
			t.Fatalf("row %d: %s", i, err)
		}
		if got := string(cell.Bytes); got != w {
			t.Errorf("row %d: got %q want %q", i, got, w)
		}
	}
	if dec.HasNext() {
		t.Errorf("expected HasNext false after draining codes")
	}
}

func TestDictDecoderOutOfRangeCode(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(1)
	w.PutLengthPrefixed([]byte("only"))
	w.PutInt16(5) // out of range: dict has one entry

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	dec, err := newDictDecoder(schema.StringType, r)
	if err != nil {
		t.Fatalf("unexpected error constructing decoder: %s", err)
	}
	if _, err := dec.Next(); err == nil {
		t.Fatal("expected a malformed-buffer error for an out-of-range dictionary code")
	}
}
