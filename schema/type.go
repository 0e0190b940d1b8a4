package schema

import "fmt"

// ColumnType is the closed, stable tag set a decode buffer declares at
// offset 0. Values must match the writer's tag numbering bit-exactly.
type ColumnType uint8

const (
	IntType ColumnType = iota
	LongType
	FloatType
	DoubleType
	BooleanType
	ByteType
	ShortType
	VoidType
	StringType
	TimestampType
	BinaryType
	GenericType
)

// ErrUnknownColumnType is returned when a buffer's column-type tag is
// outside the closed set above.
var ErrUnknownColumnType = fmt.Errorf("unknown column type")

func (c ColumnType) String() string {
	switch c {
	case IntType:
		return "Int"
	case LongType:
		return "Long"
	case FloatType:
		return "Float"
	case DoubleType:
		return "Double"
	case BooleanType:
		return "Boolean"
	case ByteType:
		return "Byte"
	case ShortType:
		return "Short"
	case VoidType:
		return "Void"
	case StringType:
		return "String"
	case TimestampType:
		return "Timestamp"
	case BinaryType:
		return "Binary"
	case GenericType:
		return "Generic"
	default:
		return ""
	}
}

// ParseColumnType decodes a raw int32 tag into a ColumnType, failing
// on anything outside the closed set rather than silently defaulting.
func ParseColumnType(tag int32) (ColumnType, error) {
	ct := ColumnType(tag)
	if int32(ct) != tag {
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownColumnType, tag)
	}
	switch ct {
	case IntType, LongType, FloatType, DoubleType, BooleanType, ByteType,
		ShortType, VoidType, StringType, TimestampType, BinaryType, GenericType:
		return ct, nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownColumnType, tag)
	}
}

// FixedWidth reports whether the type has a physical width known ahead
// of decoding a value (true for INT..SHORT and TIMESTAMP).
func (c ColumnType) FixedWidth() bool {
	switch c {
	case IntType, LongType, FloatType, DoubleType, BooleanType, ByteType, ShortType, TimestampType:
		return true
	default:
		return false
	}
}

// Width returns the physical byte width of a fixed-width type. Calling
// it on a variable-width type (VOID, STRING, BINARY, GENERIC) panics —
// those types have no fixed width by construction, and a caller asking
// for one is a programmer error at this layer, not a decode failure.
func (c ColumnType) Width() int {
	switch c {
	case ByteType, BooleanType:
		return 1
	case ShortType:
		return 2
	case IntType, FloatType:
		return 4
	case LongType, DoubleType, TimestampType:
		return 8
	default:
		panic("schema: " + c.String() + " has no fixed width")
	}
}
