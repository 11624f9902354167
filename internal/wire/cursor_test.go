package wire

import "testing"

func TestCursorFields(t *testing.T) {
	buf := []byte{
		0x2A,             // u8
		0x34, 0x12,       // u16le -> 0x1234
		0x78, 0x56, 0x34, 0x12, // u32le -> 0x12345678
		'h', 'i', 0, // cstr "hi"
	}
	c := NewCursor(buf)

	u8, ok := c.U8()
	if !ok || u8 != 0x2A {
		t.Fatalf("U8: got %v, %v", u8, ok)
	}
	u16, ok := c.U16LE()
	if !ok || u16 != 0x1234 {
		t.Fatalf("U16LE: got %#x, %v", u16, ok)
	}
	u32, ok := c.U32LE()
	if !ok || u32 != 0x12345678 {
		t.Fatalf("U32LE: got %#x, %v", u32, ok)
	}
	s, ok := c.CString()
	if !ok || s != "hi" {
		t.Fatalf("CString: got %q, %v", s, ok)
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.Remaining())
	}
}

func TestCursorShortRead(t *testing.T) {
	c := NewCursor([]byte{0x01})
	if _, ok := c.U32LE(); ok {
		t.Fatal("expected short read to fail")
	}
	// cursor position must not advance past what was actually available
	if c.Remaining() != 1 {
		t.Fatalf("short read must not consume bytes: remaining=%d", c.Remaining())
	}
}

func TestCStringUnterminated(t *testing.T) {
	c := NewCursor([]byte{'a', 'b', 'c'})
	s, ok := c.CString()
	if !ok || s != "abc" {
		t.Fatalf("expected trailing cstr to return remainder, got %q %v", s, ok)
	}
}
