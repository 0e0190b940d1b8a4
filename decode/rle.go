package decode

import (
	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// rleDecoder decodes a stream of (value, runLength:int32) pairs.
// Applicable to fixed-width numeric types, BOOLEAN, SHORT, BYTE,
// TIMESTAMP (spec.md §4.B). has_next is "buffer has remaining bytes";
// the writer guarantees the final run ends exactly at end-of-buffer
// (SPEC_FULL.md Open Question a) — if it doesn't, the next value read
// fails with ErrMalformedBuffer rather than silently over-reading.
type rleDecoder struct {
	col schema.ColumnType
	r   *bits.Reader

	cell       schema.Cell
	runLen     int32
	countInRun int32
}

func newRLEDecoder(col schema.ColumnType, r *bits.Reader) *rleDecoder {
	return &rleDecoder{col: col, r: r, cell: schema.NewCell(col)}
}

func (d *rleDecoder) HasNext() bool {
	if d.countInRun < d.runLen {
		return true
	}
	return d.r.HasRemaining()
}

func (d *rleDecoder) Next() (*schema.Cell, error) {
	if !d.HasNext() {
		return nil, ErrMisuse
	}

	if d.countInRun == d.runLen {
		if err := schema.ExtractInto(d.col, d.r, &d.cell); err != nil {
			return nil, malformed("rle decoder value", err)
		}
		runLen, err := d.r.ReadI32()
		if err != nil {
			return nil, malformed("rle decoder run length", err)
		}
		d.runLen = runLen
		d.countInRun = 1
	} else {
		d.countInRun++
	}

	return &d.cell, nil
}
