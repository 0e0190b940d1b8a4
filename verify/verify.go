// Package verify holds small numeric comparison helpers used by the
// decode package's round-trip property tests, adapted from the
// teacher's vectorized predicate kernels — unrolled by 8 the same way
// — but repurposed here to check decode output against an expected
// sequence rather than to filter rows for a query engine.
package verify

type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Floats interface {
	~float32 | ~float64
}

type Numeric interface {
	SignedInts | UnsignedInts | Floats
}

// EqualSequence reports whether got and want hold the same values in
// the same order, and if not, the first index where they diverge.
// Element-wise equality is the exact property spec.md §8 asks
// decode(encode(row_sequence)) to satisfy.
func EqualSequence[T comparable](got, want []T) (ok bool, mismatchAt int) {
	if len(got) != len(want) {
		return false, min(len(got), len(want))
	}

	n := len(got)
	i := 0
	for ; i+7 < n; i += 8 {
		m0 := got[i+0] == want[i+0]
		m1 := got[i+1] == want[i+1]
		m2 := got[i+2] == want[i+2]
		m3 := got[i+3] == want[i+3]
		m4 := got[i+4] == want[i+4]
		m5 := got[i+5] == want[i+5]
		m6 := got[i+6] == want[i+6]
		m7 := got[i+7] == want[i+7]
		if !(m0 && m1 && m2 && m3 && m4 && m5 && m6 && m7) {
			break
		}
	}
	for ; i < n; i++ {
		if got[i] != want[i] {
			return false, i
		}
	}
	return true, -1
}

// InRange reports whether v lies in [lo, hi) for any Numeric type,
// used by the RLE byte-budget property test to check a measured byte
// count against its spec-derived bound.
func InRange[T Numeric](v, lo, hi T) bool {
	return v >= lo && v < hi
}
