package decode

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// NewBaseValue is the sentinel flag byte that introduces a full-width
// value rather than a delta. Chosen to match the writer's convention
// of reserving the most negative int8 as "not a delta" (SPEC_FULL.md
// Open Question b).
const NewBaseValue int8 = -128

// byteDeltaDecoder decodes a stream of 1-byte flags, each either
// NewBaseValue (followed by a full-width value) or a signed delta in
// [-127, 127] added to the previous value at the column's natural
// integer width, with writer-defined wraparound. Applicable to SHORT,
// INT, LONG (spec.md §4.B).
type byteDeltaDecoder struct {
	col     schema.ColumnType
	r       *bits.Reader
	prev    schema.Cell
	started bool
}

func newByteDeltaDecoder(col schema.ColumnType, r *bits.Reader) (*byteDeltaDecoder, error) {
	switch col {
	case schema.ShortType, schema.IntType, schema.LongType:
	default:
		return nil, fmt.Errorf("%w: byte-delta over %s", schema.ErrIncompatibleEncoding, col)
	}
	return &byteDeltaDecoder{col: col, r: r, prev: schema.NewCell(col)}, nil
}

func (d *byteDeltaDecoder) HasNext() bool {
	return d.r.HasRemaining()
}

func (d *byteDeltaDecoder) Next() (*schema.Cell, error) {
	if !d.HasNext() {
		return nil, ErrMisuse
	}

	flag, err := d.r.ReadI8()
	if err != nil {
		return nil, malformed("byte-delta flag", err)
	}

	if !d.started || flag == NewBaseValue {
		if err := schema.ExtractInto(d.col, d.r, &d.prev); err != nil {
			return nil, malformed("byte-delta base value", err)
		}
		d.started = true
		return &d.prev, nil
	}

	switch d.col {
	case schema.ShortType:
		d.prev.I64 = int64(int16(d.prev.I64) + int16(flag))
	case schema.IntType:
		d.prev.I64 = int64(int32(d.prev.I64) + int32(flag))
	case schema.LongType:
		d.prev.I64 = d.prev.I64 + int64(flag)
	}

	return &d.prev, nil
}
