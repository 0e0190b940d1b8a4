package decode

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// bitsetDecoder decodes a BOOLEAN_BITSET buffer: an explicit
// uncompressed row count followed by ceil(count/64) little-endian
// 64-bit words, LSB-first. Applicable only to BOOLEAN (spec.md §4.B).
type bitsetDecoder struct {
	set  bits.Bitset
	pos  int
	n    int
	cell schema.Cell
}

func newBitsetDecoder(r *bits.Reader) (*bitsetDecoder, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, malformed("bitset decoder count", err)
	}
	if count < 0 {
		return nil, malformed("bitset decoder count", fmt.Errorf("negative count %d", count))
	}

	words := make([]uint64, bits.WordsNeeded(int(count)))
	for i := range words {
		w, err := r.ReadU64()
		if err != nil {
			return nil, malformed("bitset decoder word", err)
		}
		words[i] = w
	}

	return &bitsetDecoder{
		set:  bits.BitsetFromWords(words, int(count)),
		n:    int(count),
		cell: schema.NewCell(schema.BooleanType),
	}, nil
}

func (d *bitsetDecoder) HasNext() bool {
	return d.pos < d.n
}

func (d *bitsetDecoder) Next() (*schema.Cell, error) {
	if !d.HasNext() {
		return nil, ErrMisuse
	}
	if d.set.Get(d.pos) {
		d.cell.I64 = 1
	} else {
		d.cell.I64 = 0
	}
	d.pos++
	return &d.cell, nil
}
