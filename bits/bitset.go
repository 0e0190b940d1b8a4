package bits

// Bitset is a variable-length little-endian bit vector backed by
// 64-bit words, LSB-first within each word — the exact BOOLEAN_BITSET
// wire shape from spec.md §6. Adapted from the teacher's fixed-size
// [64*8]uint64 Bitfield (sized for one 32k-row block); this version is
// sized to ceil(n/64) words because spec.md places no row-count cap at
// this layer (SPEC_FULL.md Open Question c). The decode path only ever
// reads a Bitset materialized from wire words, so only the read side
// of the teacher's Bitfield API survives here.
type Bitset struct {
	words []uint64
	n     int
}

// WordsNeeded returns ceil(n/64), the number of 64-bit words the wire
// layout reserves for n boolean rows.
func WordsNeeded(n int) int {
	return (n + 63) / 64
}

// BitsetFromWords wraps pre-decoded words (read off the wire) without
// copying.
func BitsetFromWords(words []uint64, n int) Bitset {
	return Bitset{words: words, n: n}
}

func (b *Bitset) Get(bit int) bool {
	word := bit >> 6
	mask := uint64(1) << uint(bit&63)
	return b.words[word]&mask != 0
}
