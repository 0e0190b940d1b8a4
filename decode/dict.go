package decode

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// dictDecoder materializes a fixed-size dictionary of cells eagerly at
// construction, then returns the entry addressed by each int16 code
// it reads. Applicable to STRING, BINARY, TIMESTAMP (spec.md §4.B).
type dictDecoder struct {
	r    *bits.Reader
	dict []schema.Cell
}

func newDictDecoder(col schema.ColumnType, r *bits.Reader) (*dictDecoder, error) {
	size, err := r.ReadI32()
	if err != nil {
		return nil, malformed("dict decoder size", err)
	}
	if size < 0 {
		return nil, malformed("dict decoder size", fmt.Errorf("negative size %d", size))
	}

	dict := make([]schema.Cell, size)
	for i := range dict {
		dict[i] = schema.NewCell(col)
		if err := schema.ExtractInto(col, r, &dict[i]); err != nil {
			return nil, malformed(fmt.Sprintf("dict decoder entry %d", i), err)
		}
	}

	return &dictDecoder{r: r, dict: dict}, nil
}

// newDictDecoderCached is like newDictDecoder but, when cache is
// non-nil, shares the materialized dictionary with any other call
// positioned over byte-identical remaining bytes (dispatch.WithDictionaryCache).
func newDictDecoderCached(col schema.ColumnType, r *bits.Reader, cache *DictionaryCache) (*dictDecoder, error) {
	if cache == nil {
		return newDictDecoder(col, r)
	}
	// size is re-read by materialize itself from r's current position;
	// rewind is unnecessary since materialize peeks rather than reads.
	dict, err := cache.materialize(col, r)
	if err != nil {
		return nil, err
	}
	return &dictDecoder{r: r, dict: dict}, nil
}

func (d *dictDecoder) HasNext() bool {
	return d.r.HasRemaining()
}

func (d *dictDecoder) Next() (*schema.Cell, error) {
	if !d.HasNext() {
		return nil, ErrMisuse
	}
	code, err := d.r.ReadI16()
	if err != nil {
		return nil, malformed("dict decoder code", err)
	}
	if code < 0 || int(code) >= len(d.dict) {
		return nil, malformed("dict decoder code", fmt.Errorf("index %d out of range [0,%d)", code, len(d.dict)))
	}
	return &d.dict[code], nil
}
