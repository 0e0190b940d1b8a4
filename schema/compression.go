package schema

import "fmt"

// CompressionType is the closed set a decode buffer declares after its
// null mask. Each value is legal only for a subset of ColumnType.
type CompressionType uint8

const (
	DefaultCompression CompressionType = iota
	RLECompression
	DictCompression
	BooleanBitsetCompression
	ByteDeltaCompression
)

// ErrUnknownCompressionType is returned when a buffer's compression
// tag is outside the closed set above.
var ErrUnknownCompressionType = fmt.Errorf("unknown compression type")

// ErrIncompatibleEncoding is returned when a compression scheme is
// declared for a column type it was never built to handle.
var ErrIncompatibleEncoding = fmt.Errorf("compression scheme incompatible with column type")

func (c CompressionType) String() string {
	switch c {
	case DefaultCompression:
		return "Default"
	case RLECompression:
		return "RLE"
	case DictCompression:
		return "Dict"
	case BooleanBitsetCompression:
		return "BooleanBitset"
	case ByteDeltaCompression:
		return "ByteDelta"
	default:
		return ""
	}
}

// ParseCompressionType decodes a raw int32 tag, failing on anything
// outside the closed set.
func ParseCompressionType(tag int32) (CompressionType, error) {
	ct := CompressionType(tag)
	if int32(ct) != tag {
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownCompressionType, tag)
	}
	switch ct {
	case DefaultCompression, RLECompression, DictCompression, BooleanBitsetCompression, ByteDeltaCompression:
		return ct, nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownCompressionType, tag)
	}
}

// Applicable reports whether CompressionType c is a legal encoding for
// ColumnType col, per spec.md §4.B:
//
//   - DEFAULT is legal for every column type.
//   - RLE is legal for fixed-width numeric types, BOOLEAN, SHORT, BYTE, TIMESTAMP.
//   - DICT is legal for STRING, BINARY, TIMESTAMP.
//   - BOOLEAN_BITSET is legal only for BOOLEAN.
//   - BYTE_DELTA is legal for SHORT, INT, LONG.
func (c CompressionType) Applicable(col ColumnType) bool {
	switch c {
	case DefaultCompression:
		return true
	case RLECompression:
		switch col {
		case IntType, LongType, FloatType, DoubleType, BooleanType, ByteType, ShortType, TimestampType:
			return true
		default:
			return false
		}
	case DictCompression:
		switch col {
		case StringType, BinaryType, TimestampType:
			return true
		default:
			return false
		}
	case BooleanBitsetCompression:
		return col == BooleanType
	case ByteDeltaCompression:
		switch col {
		case ShortType, IntType, LongType:
			return true
		default:
			return false
		}
	default:
		return false
	}
}
