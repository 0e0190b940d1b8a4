package schema

import (
	"fmt"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/compression"
)

// Cell is the reusable, mutable container a decoder rewrites on every
// row (spec.md §3, Glossary). Its identity never changes; only the
// field matching its ColumnType is meaningful after a given
// ExtractInto call. Callers that need to retain a value past the next
// ExtractInto must copy it out — Bytes in particular is a window into
// the source buffer and is invalidated immediately.
type Cell struct {
	Bytes []byte // STRING, BINARY, GENERIC — window into the source buffer

	I64 int64   // INT, LONG, SHORT, BYTE, BOOLEAN(0/1), TIMESTAMP seconds
	F64 float64 // FLOAT, DOUBLE

	Nanos int32 // TIMESTAMP nanoseconds component

	Type ColumnType
}

// init asserts Cell's field order wastes no alignment padding. Cell is
// allocated once per decoder and overwritten on every row, so its
// layout matters; this catches a future field addition/reorder that
// reintroduces padding before it ships, rather than leaving the check
// as a test someone could skip.
func init() {
	report := compression.GetWellAlignedStructReport(Cell{})
	if !report.IsWellAligned {
		panic(fmt.Sprintf("schema: Cell wastes %d bytes of padding (size %d, optimal %d); reorder its fields",
			report.WastedBytes, report.StructSize, report.OptimalSize))
	}
}

// NewCell materializes a fresh, zeroed Cell for ColumnType t.
func NewCell(t ColumnType) Cell {
	return Cell{Type: t}
}

// TIMESTAMP is packed into a single 8-byte value (spec.md §4.A groups
// it with the fixed 8-byte types): the low nanosBits hold the
// nanosecond component, the rest hold whole seconds. nanosBits is 30,
// the tightest fit: a nanosecond count never exceeds 999,999,999, which
// needs 30 bits (2^29 = 536,870,912 < 999,999,999 < 2^30 = 1,073,741,824).
const (
	nanosBits = 30
	nanosMask = 1<<nanosBits - 1
)

// PackTimestamp encodes seconds and nanos into the 8-byte wire form
// ExtractInto's TIMESTAMP case expects.
func PackTimestamp(seconds int64, nanos int32) int64 {
	return seconds<<nanosBits | int64(nanos)
}

// ExtractInto advances r past one encoded value of ColumnType t and
// overwrites cell with it. It is the only place that knows the
// physical width/layout of a value (spec.md §4.A).
func ExtractInto(t ColumnType, r *bits.Reader, cell *Cell) error {
	cell.Type = t
	switch t {
	case IntType:
		v, err := r.ReadI32()
		if err != nil {
			return err
		}
		cell.I64 = int64(v)
	case LongType:
		v, err := r.ReadI64()
		if err != nil {
			return err
		}
		cell.I64 = v
	case FloatType:
		v, err := r.ReadF32()
		if err != nil {
			return err
		}
		cell.F64 = float64(v)
	case DoubleType:
		v, err := r.ReadF64()
		if err != nil {
			return err
		}
		cell.F64 = v
	case BooleanType:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		cell.I64 = int64(v)
	case ByteType:
		v, err := r.ReadI8()
		if err != nil {
			return err
		}
		cell.I64 = int64(v)
	case ShortType:
		v, err := r.ReadI16()
		if err != nil {
			return err
		}
		cell.I64 = int64(v)
	case VoidType:
		// zero-width: cell carries no payload beyond its Type tag.
	case StringType, BinaryType, GenericType:
		window, err := r.ReadLengthPrefixed()
		if err != nil {
			return err
		}
		cell.Bytes = window
	case TimestampType:
		packed, err := r.ReadI64()
		if err != nil {
			return err
		}
		cell.I64 = packed >> nanosBits
		cell.Nanos = int32(packed & nanosMask)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownColumnType, t.String())
	}
	return nil
}

// Project materializes cell into a plain Go value, the stand-in for
// the engine's real object-inspector framework (out of scope per
// spec.md §1 — see SPEC_FULL.md §3). Only a VOID cell projects to nil;
// a SQL NULL row never reaches Project, since the null-mask wrapper
// reports it before any cell is produced.
func Project(cell *Cell) any {
	switch cell.Type {
	case IntType:
		return int32(cell.I64)
	case LongType:
		return cell.I64
	case FloatType:
		return float32(cell.F64)
	case DoubleType:
		return cell.F64
	case BooleanType:
		return cell.I64 != 0
	case ByteType:
		return int8(cell.I64)
	case ShortType:
		return int16(cell.I64)
	case VoidType:
		return nil
	case StringType:
		return string(cell.Bytes)
	case BinaryType, GenericType:
		return cell.Bytes
	case TimestampType:
		return Timestamp{Seconds: cell.I64, Nanos: cell.Nanos}
	default:
		panic("schema: Project called on unknown column type " + cell.Type.String())
	}
}

// Timestamp is the materialized form of a TIMESTAMP cell: seconds and
// nanoseconds packed per the writer's convention (spec.md §4.A).
type Timestamp struct {
	Seconds int64
	Nanos   int32
}
