// Package iterator implements the engine-facing row cursor (spec.md
// §4.D): a lazily-initialized init/next/current facade over the
// decode package's null-mask-wrapped decoder chain, with
// poison-on-fatal-error semantics.
package iterator

import (
	"errors"
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/decode"
	"github.com/arbordb/coldecode/schema"
)

type state int

const (
	stateFresh state = iota
	stateStreaming
	stateExhausted
	statePoisoned
)

// ErrPoisoned is returned by any operation on an iterator that
// previously suffered a fatal decode error.
var ErrPoisoned = errors.New("iterator poisoned")

// Iterator is the public row cursor returned by dispatch.NewIterator.
// It owns the reader positioned just past the column-type tag; on
// first Next it reads the null-mask header and the compression tag,
// selects a decoder, and wraps it in decode.NullMask.
type Iterator struct {
	col   schema.ColumnType
	r     *bits.Reader
	cache *decode.DictionaryCache

	mask *decode.NullMask

	state state
	err   error
}

// New constructs an Iterator for col over r, which must be positioned
// immediately after the column-type tag. Construction does no I/O;
// the null-mask header and compression tag are read lazily on the
// first call to Next (spec.md §4.D's laziness rule). cache is optional
// and only consulted if the buffer turns out to be DICT-compressed.
func New(col schema.ColumnType, r *bits.Reader, cache *decode.DictionaryCache) *Iterator {
	return &Iterator{col: col, r: r, cache: cache}
}

// Init performs the one-time setup step: reads the null-mask header,
// then the compression tag, and constructs the type-specific decoder
// (spec.md §4.E steps 3-4). Calling it more than once is a no-op.
// Callers normally never need to call it directly since Next calls it
// lazily on first use.
func (it *Iterator) Init() error {
	if it.state != stateFresh {
		return it.err
	}

	mask, err := decode.NewNullMask(it.r, nil)
	if err != nil {
		return it.poison(err)
	}

	cmpTag, err := it.r.ReadI32()
	if err != nil {
		return it.poison(fmt.Errorf("reading compression tag: %s", err.Error()))
	}
	cmp, err := schema.ParseCompressionType(cmpTag)
	if err != nil {
		return it.poison(err)
	}

	dec, err := decode.NewWithCache(it.col, cmp, it.r, it.cache)
	if err != nil {
		return it.poison(err)
	}
	mask.SetInner(dec)

	it.mask = mask
	it.state = stateStreaming
	return nil
}

func (it *Iterator) poison(err error) error {
	it.state = statePoisoned
	it.err = err
	return err
}

// HasNext reports whether Next would advance to another row. It
// triggers lazy Init on a fresh iterator, since the question cannot
// be answered without having read the header.
func (it *Iterator) HasNext() bool {
	switch it.state {
	case statePoisoned, stateExhausted:
		return false
	case stateFresh:
		if err := it.Init(); err != nil {
			return false
		}
	}
	if it.mask.HasNext() {
		return true
	}
	it.state = stateExhausted
	return false
}

// Next advances to the next row (spec.md §4.D). If the iterator is
// fresh, it first initializes. Calling Next from Exhausted or
// Poisoned is a programmer error and returns decode.ErrMisuse /
// ErrPoisoned respectively, without attempting to read further.
func (it *Iterator) Next() error {
	switch it.state {
	case statePoisoned:
		return fmt.Errorf("%w: %s", ErrPoisoned, it.err.Error())
	case stateExhausted:
		return decode.ErrMisuse
	case stateFresh:
		if err := it.Init(); err != nil {
			return err
		}
	}

	if !it.mask.HasNext() {
		it.state = stateExhausted
		return decode.ErrMisuse
	}

	if err := it.mask.Next(); err != nil {
		return it.poison(err)
	}
	return nil
}

// Current returns the current row's value, read-only and idempotent
// between Next calls (spec.md §4.D). Calling it before the first Next
// or after poisoning yields (nil, false).
func (it *Iterator) Current() (cell *schema.Cell, isNull bool) {
	if it.state == statePoisoned || it.mask == nil {
		return nil, false
	}
	return it.mask.Current()
}

// Err returns the fatal error that poisoned the iterator, if any.
func (it *Iterator) Err() error {
	return it.err
}

// DumpContext renders a diagnostic window of the unread buffer tail
// at the iterator's current position, for a caller to attach to a
// fatal error report (spec.md §7's "fatal decode error surfaced to
// the caller" — this is the human-readable half of that surfacing).
func (it *Iterator) DumpContext(window int) string {
	return decode.DumpContext(it.r.PeekRemaining(), 0, window)
}
