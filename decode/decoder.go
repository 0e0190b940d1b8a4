package decode

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
)

// Decoder is a lazy, finite, non-restartable sequence of cells
// (spec.md §4.B). Next returns a reference to the decoder's own
// internal Cell — the same object on every call — so callers that
// need to retain a value across calls must copy it. Calling Next when
// HasNext is false is a programmer error, left undefined at this
// layer per spec.md (callers should treat it as ErrMisuse; the
// concrete decoders below return ErrMisuse rather than silently
// returning garbage).
type Decoder interface {
	HasNext() bool
	Next() (*schema.Cell, error)
}

// New selects and constructs the decoder body matching the (col, cmp)
// pair, consuming cmp-specific header fields (dictionary size, boolean
// count, ...) from r before returning. It is the one place within the
// decode package that maps a CompressionType tag to a concrete
// decoder — the dispatch package's NewIterator is the layer above that
// additionally resolves the ColumnType tag and builds the null mask.
func New(col schema.ColumnType, cmp schema.CompressionType, r *bits.Reader) (Decoder, error) {
	return NewWithCache(col, cmp, r, nil)
}

// NewWithCache is New, plus an optional DictionaryCache consulted only
// when cmp is DictCompression; cache may be nil, in which case it
// behaves exactly like New.
func NewWithCache(col schema.ColumnType, cmp schema.CompressionType, r *bits.Reader, cache *DictionaryCache) (Decoder, error) {
	switch cmp {
	case schema.DefaultCompression, schema.RLECompression, schema.DictCompression,
		schema.BooleanBitsetCompression, schema.ByteDeltaCompression:
	default:
		return nil, fmt.Errorf("%w: tag %d", schema.ErrUnknownCompressionType, cmp)
	}

	if !cmp.Applicable(col) {
		return nil, fmt.Errorf("%w: %s over %s", schema.ErrIncompatibleEncoding, cmp, col)
	}

	switch cmp {
	case schema.DefaultCompression:
		return newDefaultDecoder(col, r), nil
	case schema.RLECompression:
		return newRLEDecoder(col, r), nil
	case schema.DictCompression:
		return newDictDecoderCached(col, r, cache)
	case schema.BooleanBitsetCompression:
		return newBitsetDecoder(r)
	case schema.ByteDeltaCompression:
		return newByteDeltaDecoder(col, r)
	default:
		return nil, fmt.Errorf("%w: tag %d", schema.ErrUnknownCompressionType, cmp)
	}
}
