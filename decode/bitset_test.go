package decode

import (
	"encoding/binary"
	"testing"

	"github.com/arbordb/coldecode/bits"
)

func TestBitsetDecoderAlternating(t *testing.T) {
	const count = 130

	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(count)

	words := bits.WordsNeeded(count)
	for wi := 0; wi < words; wi++ {
		var word uint64
		for b := 0; b < 64; b++ {
			bit := wi*64 + b
			if bit >= count {
				break
			}
			// alternating true/false starting with true at row 0
			if bit%2 == 0 {
				word |= 1 << uint(b)
			}
		}
		w.PutUint64(word)
	}

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	dec, err := newBitsetDecoder(r)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for i := 0; i < count; i++ {
		if !dec.HasNext() {
			t.Fatalf("row %d: expected HasNext true", i)
		}
		cell, err := dec.Next()
		if err != nil {
			t.Fatalf("row %d: %s", i, err)
		}
		want := i%2 == 0
		got := cell.I64 != 0
		if got != want {
			t.Errorf("row %d: got %v want %v", i, got, want)
		}
	}

	if dec.HasNext() {
		t.Error("expected HasNext false on the 131st call")
	}
	if _, err := dec.Next(); err != ErrMisuse {
		t.Errorf("expected ErrMisuse past exhaustion, got %v", err)
	}
}
