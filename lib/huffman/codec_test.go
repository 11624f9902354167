package huffman

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{0x00},
		{0xFF},
		{0x41, 0x42, 0x43},
		bytes.Repeat([]byte{0xAA, 0x01, 0x55, 0x80}, 64),
	}
	for _, in := range cases {
		enc, err := Default.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%v): %v", in, err)
		}
		dec, err := Default.Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(dec, in) {
			t.Fatalf("round trip mismatch: got %v, want %v", dec, in)
		}
	}
}

func TestRoundTripAllByteValues(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	enc, err := Default.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Default.Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, in) {
		t.Fatal("round trip over all 256 byte values failed")
	}
}

func TestUnencodedPassthrough(t *testing.T) {
	payload := []byte{0x10, 0x20, 0x30}
	src := append([]byte{0xFF}, payload...)
	dec, err := Default.Decode(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, payload) {
		t.Fatalf("got %v, want %v", dec, payload)
	}
}

func TestEncodeSizeBound(t *testing.T) {
	in := bytes.Repeat([]byte{0x99}, 2048)
	enc, err := Default.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) > len(in)+1 {
		t.Fatalf("encode exceeded bound: %d > %d", len(enc), len(in)+1)
	}
}

func TestBitReversalSelfInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if ReverseMap[ReverseMap[i]] != byte(i) {
			t.Fatalf("ReverseMap not self-inverse at %d", i)
		}
	}
}

func TestS1HuffmanVector(t *testing.T) {
	enc, err := Default.Encode([]byte{0x41, 0x42, 0x43})
	if err != nil {
		t.Fatal(err)
	}
	if enc[0] > 7 {
		t.Fatalf("padding byte out of range: %d", enc[0])
	}
	dec, err := Default.Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0x41, 0x42, 0x43}) {
		t.Fatalf("got %v", dec)
	}
}

func TestDecodeStrictTruncated(t *testing.T) {
	enc, err := Default.Encode([]byte{0x41})
	if err != nil {
		t.Fatal(err)
	}
	// enc is [padding=0, dataByte]; claim only 4 of its 8 bits are real,
	// which for this codec's fixed 8-bit-per-symbol tree can never land
	// on a leaf.
	truncated := []byte{4, enc[1]}

	if _, err := Default.DecodeStrict(truncated); err == nil {
		t.Fatal("expected DecodeStrict to report a truncated walk")
	}
	// The lenient decoder must not fail on the same input, it just emits
	// no symbol for the partial tail.
	dec, err := Default.Decode(truncated)
	if err != nil {
		t.Fatalf("lenient Decode should not fail: %v", err)
	}
	if len(dec) != 0 {
		t.Fatalf("expected no symbols decoded from a partial walk, got %v", dec)
	}
}
