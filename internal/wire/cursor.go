// Package wire implements the shared little-endian binary cursor used to
// parse every datagram in the protocol core, and the sentinel error kinds
// from spec §7. A *Cursor holds (buffer, position); each field read
// advances the position in place and returns the value with an ok flag.
// A read returns ok=false instead of panicking when the buffer is
// exhausted, so callers can stop parsing at the point of a short read and
// keep whatever fields were already populated.
package wire

import (
	"encoding/binary"
	"math"
)

// Cursor walks a byte slice field by field without mutating the slice.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining reports how many bytes are left to read.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Pos is the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Seek repositions the cursor to an absolute offset, clamped to the buffer.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.buf) {
		pos = len(c.buf)
	}
	c.pos = pos
}

// Bytes reads n raw bytes.
func (c *Cursor) Bytes(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// U8 reads one byte.
func (c *Cursor) U8() (uint8, bool) {
	b, ok := c.Bytes(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

// Bool reads one byte and reports it as non-zero.
func (c *Cursor) Bool() (bool, bool) {
	v, ok := c.U8()
	return v != 0, ok
}

// U16LE reads a little-endian uint16.
func (c *Cursor) U16LE() (uint16, bool) {
	b, ok := c.Bytes(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

// I16LE reads a little-endian int16.
func (c *Cursor) I16LE() (int16, bool) {
	v, ok := c.U16LE()
	return int16(v), ok
}

// U32LE reads a little-endian uint32.
func (c *Cursor) U32LE() (uint32, bool) {
	b, ok := c.Bytes(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// I32LE reads a little-endian int32.
func (c *Cursor) I32LE() (int32, bool) {
	v, ok := c.U32LE()
	return int32(v), ok
}

// F32LE reads a little-endian IEEE-754 float32.
func (c *Cursor) F32LE() (float32, bool) {
	v, ok := c.U32LE()
	if !ok {
		return 0, false
	}
	return math.Float32frombits(v), true
}

// CString reads a NUL-terminated UTF-8 string. If no NUL is found before
// the buffer ends, the remainder is returned (non-fatal short read, per
// spec §4.3's cstr definition).
func (c *Cursor) CString() (string, bool) {
	start := c.pos
	for c.pos < len(c.buf) {
		if c.buf[c.pos] == 0 {
			s := string(c.buf[start:c.pos])
			c.pos++
			return s, true
		}
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return string(c.buf[start:c.pos]), true
}
