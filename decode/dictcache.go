package decode

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/schema"
	"golang.org/x/sync/singleflight"
)

// DictionaryCache deduplicates eager materialization of a DICT
// dictionary across goroutines opening independent iterators over one
// shared buffer, echoing the teacher's SlabManager.loadGroup
// (manager/meta/slab_manager.go) — a singleflight.Group the teacher
// declared on every SlabManager but never actually called .Do on.
//
// The cache key is the content digest of the unread buffer tail at
// the point a DICT body begins: two decoders positioned over
// byte-identical dictionary-and-codes regions share one materialized
// dictionary, independent of which logical column or goroutine got
// there first.
type DictionaryCache struct {
	group singleflight.Group

	mu      sync.RWMutex
	entries map[[32]byte]dictCacheEntry
}

type dictCacheEntry struct {
	dict      []schema.Cell
	bytesRead int
}

// NewDictionaryCache returns an empty cache ready to be shared across
// dispatch.NewIterator calls via dispatch.WithDictionaryCache.
func NewDictionaryCache() *DictionaryCache {
	return &DictionaryCache{entries: map[[32]byte]dictCacheEntry{}}
}

// materialize returns the dictionary encoded at r's current position
// (size:int32 followed by size values of column type col per spec.md
// §4.B) and advances r past it, sharing the parse across concurrent
// callers over identical bytes.
func (c *DictionaryCache) materialize(col schema.ColumnType, r *bits.Reader) ([]schema.Cell, error) {
	peek := r.PeekRemaining()
	key := sha256.Sum256(peek)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		if err := r.Skip(entry.bytesRead); err != nil {
			return nil, malformed("dictionary cache replay", err)
		}
		return entry.dict, nil
	}

	v, err, _ := c.group.Do(string(key[:]), func() (interface{}, error) {
		sub := bits.NewReader(peek, r.Order())
		size, err := sub.ReadI32()
		if err != nil {
			return nil, err
		}
		if size < 0 {
			return nil, fmt.Errorf("negative dictionary size %d", size)
		}
		dict := make([]schema.Cell, size)
		for i := range dict {
			dict[i] = schema.NewCell(col)
			if err := schema.ExtractInto(col, sub, &dict[i]); err != nil {
				return nil, err
			}
		}

		built := dictCacheEntry{dict: dict, bytesRead: sub.Pos()}
		c.mu.Lock()
		c.entries[key] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, malformed("dictionary", err)
	}

	built := v.(dictCacheEntry)
	if err := r.Skip(built.bytesRead); err != nil {
		return nil, malformed("dictionary cache advance", err)
	}
	return built.dict, nil
}
