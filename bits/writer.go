package bits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Writer is a growable byte-buffer cursor, the write-side counterpart
// of Reader. It exists in this module purely to build well-formed
// fixture buffers for decode tests — the writer/builder side proper is
// out of scope (spec.md §1).
type Writer struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

// NewWriter wraps buf for appending. Pass an empty/nil buf with
// EnableGrowing to build up a buffer from scratch.
func NewWriter(buf []byte, order binary.ByteOrder) Writer {
	return Writer{data: buf, size: len(buf), order: order}
}

func (w *Writer) EnableGrowing() { w.growingEnabled = true }

func (w *Writer) Reset() { w.pos = 0 }

func (w Writer) Position() int { return w.pos }

func (w *Writer) grow(atLeast int) {
	newSize := w.size*2 + 1
	if w.pos+atLeast > newSize {
		newSize = w.pos + atLeast
	}
	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
	w.size = newSize
}

func (w *Writer) tryGrow(n int) {
	if (w.pos + n) > w.size {
		if w.growingEnabled {
			w.grow(n)
		} else {
			panic(fmt.Sprintf("bits.Writer: growing disabled at pos %d, need %d more, size %d", w.pos, n, w.size))
		}
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.tryGrow(len(p))
	n := copy(w.data[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *Writer) EmptyBytes(n int) {
	w.tryGrow(n)
	w.pos += n
}

func (w *Writer) Bytes() []byte {
	return w.data[:w.pos]
}

func (w *Writer) WriteByte(u uint8) {
	w.tryGrow(1)
	w.data[w.pos] = u
	w.pos++
}

func (w *Writer) PutInt8(v int8) { w.WriteByte(uint8(v)) }

func (w *Writer) PutUint16(v uint16) {
	w.tryGrow(2)
	w.order.PutUint16(w.data[w.pos:], v)
	w.pos += 2
}

func (w *Writer) PutInt16(v int16) { w.PutUint16(uint16(v)) }

func (w *Writer) PutUint32(v uint32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

func (w *Writer) PutInt32(v int32) { w.PutUint32(uint32(v)) }

func (w *Writer) PutUint64(v uint64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}

func (w *Writer) PutInt64(v int64) { w.PutUint64(uint64(v)) }

func (w *Writer) PutFloat32(v float32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], math.Float32bits(v))
	w.pos += 4
}

func (w *Writer) PutFloat64(v float64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], math.Float64bits(v))
	w.pos += 8
}

// PutLengthPrefixed writes a 4-byte length prefix followed by b, the
// STRING/BINARY/GENERIC wire shape from spec.md §6.
func (w *Writer) PutLengthPrefixed(b []byte) {
	w.PutUint32(uint32(len(b)))
	w.Write(b)
}
