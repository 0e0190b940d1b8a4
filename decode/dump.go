package decode

import "github.com/davecgh/go-spew/spew"

// DumpContext renders a window of the offending buffer around a
// MalformedBuffer failure for human debugging, echoing the teacher's
// spew.Dump(...) calls on raw buffers under decode failure
// (manager/load_slab_from_disk.go, manager/meta/load_slab_from_disk.go).
// It is never called by the library on the happy path — only by
// callers (the CLI, tests) that want a readable dump alongside a
// returned error.
func DumpContext(buf []byte, pos int, window int) string {
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + window
	if end > len(buf) {
		end = len(buf)
	}
	return spew.Sdump(buf[start:end])
}
