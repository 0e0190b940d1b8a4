package decode

import "testing"

func TestDumpContextWindowsAroundPosition(t *testing.T) {
	buf := []byte("the quick brown fox jumps over the lazy dog")

	got := DumpContext(buf, 10, 4)
	if got == "" {
		t.Fatal("expected a non-empty dump")
	}

	// a window past the end of the buffer clamps rather than panicking.
	if got := DumpContext(buf, len(buf), 100); got == "" {
		t.Fatal("expected a non-empty dump even at the buffer's tail")
	}

	// an empty buffer is valid input, not a panic.
	if got := DumpContext(nil, 0, 10); got == "" {
		t.Fatal("expected spew's rendering of an empty slice, not an empty string")
	}
}
