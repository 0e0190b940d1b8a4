package bits

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	// ErrEOF is an end-of-buffer sentinel for callers. Reader's own
	// reads do not return it: a read past the end of the buffer
	// reports ErrReadMismatch.
	ErrEOF = errors.New("end of file")
	// ErrReadMismatch is returned when fewer bytes are available than
	// the caller asked for — a truncated buffer.
	ErrReadMismatch = errors.New("read size mismatch")
)

// Reader is a cursor over an in-memory byte buffer. Unlike an
// io.Reader-backed cursor, it holds the backing slice directly so a
// STRING/BINARY/GENERIC read can hand back a window into that slice
// without copying — the caller must not retain the window past the
// next call that advances the cursor (see ReadWindow).
type Reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// NewReader wraps buf for reading. buf is never copied or mutated;
// constructing a second Reader over the same buf gives an independent
// cursor, which is how the dispatcher "duplicates" a buffer before
// decoding it (spec.md §3, §4.E).
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

// Pos reports the current read offset.
func (r *Reader) Pos() int { return r.pos }

// HasRemaining reports whether there are unread bytes left. Several
// decoders (DEFAULT, RLE) use this directly as their has_next check.
func (r *Reader) HasRemaining() bool { return r.pos < len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Order reports the byte order this Reader was constructed with, so
// callers that build a second Reader over a sub-window (e.g. a
// dictionary cache materializing into its own cursor) stay consistent.
func (r *Reader) Order() binary.ByteOrder { return r.order }

// PeekRemaining returns a window into the unread tail of the buffer
// without advancing the cursor. Like ReadWindow, the slice is only
// valid until the cursor advances past it.
func (r *Reader) PeekRemaining() []byte { return r.buf[r.pos:] }

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, ErrReadMismatch
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) MustReadU8() uint8 {
	v, err := r.ReadU8()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r *Reader) MustReadU16() uint16 {
	v, err := r.ReadU16()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r *Reader) MustReadU32() uint32 {
	v, err := r.ReadU32()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) MustReadI32() int32 {
	v, err := r.ReadI32()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *Reader) MustReadU64() uint64 {
	v, err := r.ReadU64()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) MustReadI64() int64 {
	v, err := r.ReadI64()
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reader) ReadF32() (float32, error) {
	u, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (r *Reader) ReadF64() (float64, error) {
	u, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func (r *Reader) MustReadF64() float64 {
	v, err := r.ReadF64()
	if err != nil {
		panic(err)
	}
	return v
}

// ReadBytes copies n bytes into out (out must have length >= n).
func (r *Reader) ReadBytes(n int, out []byte) error {
	b, err := r.take(n)
	if err != nil {
		return err
	}
	copy(out, b)
	return nil
}

// ReadWindow returns a slice directly into the backing buffer — no
// copy. It is invalidated the instant the cursor advances again
// (spec.md §4.A: "the cell references a window into the buffer and is
// invalidated on the next extract_into").
func (r *Reader) ReadWindow(n int) ([]byte, error) {
	return r.take(n)
}

// ReadLengthPrefixed reads a 4-byte length prefix followed by that
// many raw bytes, returning a window (see ReadWindow).
func (r *Reader) ReadLengthPrefixed() ([]byte, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return r.ReadWindow(int(n))
}
