package dispatch

import (
	"github.com/arbordb/coldecode/decode"
	"github.com/google/uuid"
)

// Option configures dispatch.NewIterator. The core decode path takes
// no configuration of its own (spec.md §6); these are the only knobs
// the dispatcher exposes, scaled down from the teacher's
// per-entry-point config struct to exactly what a buffer dispatcher
// needs.
type Option func(*config)

type config struct {
	sourceID  uuid.UUID
	hasSource bool
	envelope  Envelope
	dictCache *decode.DictionaryCache
}

// DictionaryCache is re-exported so callers never need to import
// decode directly just to build one.
type DictionaryCache = decode.DictionaryCache

// NewDictionaryCache returns an empty cache ready to share across
// NewIterator calls via WithDictionaryCache.
func NewDictionaryCache() *DictionaryCache {
	return decode.NewDictionaryCache()
}

// WithSourceID attaches a correlation id to errors raised while
// dispatching this buffer, echoing the teacher's per-block
// uuid.UUID identity (schema.DiskHeader.Uid, schema.BlockUniqueId).
func WithSourceID(id uuid.UUID) Option {
	return func(c *config) {
		c.sourceID = id
		c.hasSource = true
	}
}

// Envelope selects how NewIterator expects the raw bytes to be framed
// before the column-type tag.
type Envelope uint8

const (
	// EnvelopeNone is the default: buf is handed to the column
	// decoder verbatim.
	EnvelopeNone Envelope = iota
	// EnvelopeLZ4 means buf is a single lz4 frame (compression.CompressLZ4's
	// output) wrapping the raw column buffer.
	EnvelopeLZ4
)

// WithEnvelope selects the buffer's storage envelope. Mode is always
// explicit — NewIterator never sniffs the bytes to guess, so a raw
// buffer that happens to start with lz4's magic number is never
// misdecoded (spec.md's design note on explicit over implicit framing).
func WithEnvelope(e Envelope) Option {
	return func(c *config) {
		c.envelope = e
	}
}

// WithDictionaryCache shares a DictionaryCache across NewIterator
// calls so concurrent iterators opened over the same DICT buffer pay
// the dictionary-materialization cost once.
func WithDictionaryCache(cache *DictionaryCache) Option {
	return func(c *config) {
		c.dictCache = cache
	}
}
