package decode

import (
	"encoding/binary"
	"testing"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

func TestRLEDecoderLong(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()

	runs := []struct {
		value int64
		count int32
	}{
		{100, 3},
		{200, 1},
		{100, 2},
	}
	for _, run := range runs {
		w.PutInt64(run.value)
		w.PutInt32(run.count)
	}

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)
	dec := newRLEDecoder(schema.LongType, r)

	want := []int64{100, 100, 100, 200, 100, 100}
	for i, v := range want {
		if !dec.HasNext() {
			t.Fatalf("row %d: expected HasNext true", i)
		}
		cell, err := dec.Next()
		if err != nil {
			t.Fatalf("row %d: %s", i, err)
		}
		if cell.I64 != v {
			t.Errorf("row %d: got %d want %d", i, cell.I64, v)
		}
	}
	if dec.HasNext() {
		t.Errorf("expected HasNext false once all runs are consumed")
	}
}
