package decode

import (
	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// defaultDecoder drains the buffer by repeatedly calling
// schema.ExtractInto. Applicable to every column type (spec.md §4.B).
type defaultDecoder struct {
	col  schema.ColumnType
	r    *bits.Reader
	cell schema.Cell
}

func newDefaultDecoder(col schema.ColumnType, r *bits.Reader) *defaultDecoder {
	return &defaultDecoder{col: col, r: r, cell: schema.NewCell(col)}
}

func (d *defaultDecoder) HasNext() bool {
	if d.col == schema.VoidType {
		// VOID has no physical width; nothing to drain by byte count.
		return false
	}
	return d.r.HasRemaining()
}

func (d *defaultDecoder) Next() (*schema.Cell, error) {
	if !d.HasNext() {
		return nil, ErrMisuse
	}
	if err := schema.ExtractInto(d.col, d.r, &d.cell); err != nil {
		return nil, malformed("default decoder", err)
	}
	return &d.cell, nil
}
