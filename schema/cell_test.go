package schema_test

import (
	"encoding/binary"
	"testing"

	"github.com/arbordb/coldecode/bits"
	"github.com/arbordb/coldecode/compression"
	"github.com/arbordb/coldecode/schema"
)

func TestExtractIntoAndProject(t *testing.T) {
	w := bits.NewWriter(nil, binary.LittleEndian)
	w.EnableGrowing()
	w.PutInt32(42)
	w.PutLengthPrefixed([]byte("hello"))
	w.PutInt64(schema.PackTimestamp(7, 500))

	r := bits.NewReader(w.Bytes(), binary.LittleEndian)

	var intCell schema.Cell
	if err := schema.ExtractInto(schema.IntType, r, &intCell); err != nil {
		t.Fatalf("int: %s", err)
	}
	if got := schema.Project(&intCell); got != int32(42) {
		t.Errorf("got %v want 42", got)
	}

	var strCell schema.Cell
	if err := schema.ExtractInto(schema.StringType, r, &strCell); err != nil {
		t.Fatalf("string: %s", err)
	}
	if got := schema.Project(&strCell); got != "hello" {
		t.Errorf("got %v want hello", got)
	}

	var tsCell schema.Cell
	if err := schema.ExtractInto(schema.TimestampType, r, &tsCell); err != nil {
		t.Fatalf("timestamp: %s", err)
	}
	got := schema.Project(&tsCell)
	want := schema.Timestamp{Seconds: 7, Nanos: 500}
	if got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestExtractIntoUnknownColumnType(t *testing.T) {
	r := bits.NewReader(nil, binary.LittleEndian)
	var cell schema.Cell
	if err := schema.ExtractInto(schema.ColumnType(255), r, &cell); err == nil {
		t.Fatal("expected an unknown-column-type error")
	}
}

// Cell is allocated once per decoder and overwritten on every row
// (spec.md §3, §9); this checks the struct layout wastes no padding,
// the property the teacher's aligner diagnostic was built to assert.
func TestCellStructIsWellAligned(t *testing.T) {
	report := compression.GetWellAlignedStructReport(schema.Cell{})
	if !report.IsWellAligned {
		t.Errorf("schema.Cell wastes %d bytes of padding; field order should be adjusted", report.WastedBytes)
	}
}
