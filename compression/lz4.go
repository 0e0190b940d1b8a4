package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// CompressLZ4 frames src as a single lz4 stream into output, the
// storage-envelope format a slab writer applies before a column block
// hits disk.
func CompressLZ4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	zw.Write(src)
	flushErr := zw.Flush()

	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLZ4 reverses CompressLZ4, returning the raw buffer a
// column decoder expects. src must be a complete lz4 frame.
func DecompressLZ4(src []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %s", err.Error())
	}
	return out, nil
}

// LooksLikeLZ4Frame reports whether src starts with the lz4 frame
// magic number. dispatch never uses this to auto-detect envelope mode
// (mode is always explicit, per spec.md's no-sniffing design note);
// the coldump CLI uses it only to print a hint when a buffer looks
// lz4-framed but -lz4 was not passed.
func LooksLikeLZ4Frame(src []byte) bool {
	const magic = 0x184D2204
	if len(src) < 4 {
		return false
	}
	got := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	return got == magic
}
