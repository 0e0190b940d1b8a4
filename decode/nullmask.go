package decode

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
	"golang.org/x/exp/slices"
)

// NullMask wraps an inner Decoder and projects null/non-null rows
// through it per spec.md §4.C. At construction it reads the null-index
// list and hands the remainder of the buffer to the inner decoder; on
// Next it advances a monotonic row counter and consults the null-index
// list before ever touching the inner decoder.
type NullMask struct {
	inner Decoder

	nullIdx []uint32
	nullPos int

	row int

	current   schema.Cell
	isNull    bool
	haveValue bool
}

// NewNullMask reads k:int32 and k ascending uint32 indices from r,
// then constructs NullMask around inner (which must already be
// positioned at the start of the value region).
func NewNullMask(r *bits.Reader, inner Decoder) (*NullMask, error) {
	k, err := r.ReadI32()
	if err != nil {
		return nil, malformed("null mask count", err)
	}
	if k < 0 {
		return nil, malformed("null mask count", fmt.Errorf("negative count %d", k))
	}

	idx := make([]uint32, k)
	for i := range idx {
		v, err := r.ReadU32()
		if err != nil {
			return nil, malformed(fmt.Sprintf("null index %d", i), err)
		}
		idx[i] = v
	}
	if !slices.IsSorted(idx) {
		return nil, malformed("null index order", fmt.Errorf("indices not strictly ascending: %v", idx))
	}
	for i := 1; i < len(idx); i++ {
		if idx[i] == idx[i-1] {
			return nil, malformed("null index order", fmt.Errorf("duplicate index %d", idx[i]))
		}
	}

	return &NullMask{inner: inner, nullIdx: idx}, nil
}

// SetInner binds the inner decoder after construction. It exists so
// callers can read the null-mask header (which precedes the
// compression tag and decoder body on the wire, spec.md §6) before
// the inner decoder can be built.
func (n *NullMask) SetInner(inner Decoder) {
	n.inner = inner
}

// HasNext reports whether another row remains: either a pending null
// index beyond the current row, or the inner decoder has more values.
func (n *NullMask) HasNext() bool {
	if n.nullPos < len(n.nullIdx) && n.nullIdx[n.nullPos] == uint32(n.row) {
		return true
	}
	return n.inner.HasNext()
}

// Next advances to the next row, caching its value (or null) for
// Current. Rows are numbered from 0; the row counter is incremented
// before the null-index comparison so row 0 is tested correctly
// (spec.md §4.C).
func (n *NullMask) Next() error {
	n.row++

	if n.nullPos < len(n.nullIdx) && n.nullIdx[n.nullPos] == uint32(n.row-1) {
		n.nullPos++
		n.isNull = true
		n.haveValue = true
		return nil
	}

	cell, err := n.inner.Next()
	if err != nil {
		return err
	}
	n.current = *cell
	n.isNull = false
	n.haveValue = true
	return nil
}

// Current returns the cached row — idempotent between Next calls
// (spec.md §4.C, §8).
func (n *NullMask) Current() (cell *schema.Cell, isNull bool) {
	if !n.haveValue {
		return nil, false
	}
	return &n.current, n.isNull
}
