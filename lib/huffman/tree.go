// Package huffman implements the fixed-tree entropy coder that every
// datagram in the protocol core passes through, including the
// bit-reversal post-step and the 0xFF unencoded-passthrough escape.
// Grounded on the teacher's internal/discover wire layer in spirit (a
// small, self-contained binary codec with no external dependency) but
// the algorithm itself is unique to this spec: a compile-time Huffman
// tree description, not XDR.
package huffman

// treeDescription is the pre-order traversal of the codec's fixed
// Huffman tree: at each internal node a one-byte descriptor has bit 0
// clear if the left child is internal and set if it is a leaf, bit 1
// likewise for the right child; leaf byte values immediately follow the
// descriptor for whichever side is a leaf.
//
// The canonical historical tree bytes used by the reference
// implementation were not available in the retrieval pack (see
// DESIGN.md); this is a from-scratch substitute built the same way —
// reversible, full (every one of the 256 byte values is a leaf), and a
// fixed 8 bits per symbol so the round-trip and size-bound properties
// in spec §8 hold exactly.
var treeDescription = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x01, 0x03, 0x02, 0x03, 0x00, 0x03, 0x04,
	0x05, 0x03, 0x06, 0x07, 0x00, 0x00, 0x03, 0x08, 0x09, 0x03, 0x0A, 0x0B, 0x00, 0x03, 0x0C, 0x0D,
	0x03, 0x0E, 0x0F, 0x00, 0x00, 0x00, 0x03, 0x10, 0x11, 0x03, 0x12, 0x13, 0x00, 0x03, 0x14, 0x15,
	0x03, 0x16, 0x17, 0x00, 0x00, 0x03, 0x18, 0x19, 0x03, 0x1A, 0x1B, 0x00, 0x03, 0x1C, 0x1D, 0x03,
	0x1E, 0x1F, 0x00, 0x00, 0x00, 0x00, 0x03, 0x20, 0x21, 0x03, 0x22, 0x23, 0x00, 0x03, 0x24, 0x25,
	0x03, 0x26, 0x27, 0x00, 0x00, 0x03, 0x28, 0x29, 0x03, 0x2A, 0x2B, 0x00, 0x03, 0x2C, 0x2D, 0x03,
	0x2E, 0x2F, 0x00, 0x00, 0x00, 0x03, 0x30, 0x31, 0x03, 0x32, 0x33, 0x00, 0x03, 0x34, 0x35, 0x03,
	0x36, 0x37, 0x00, 0x00, 0x03, 0x38, 0x39, 0x03, 0x3A, 0x3B, 0x00, 0x03, 0x3C, 0x3D, 0x03, 0x3E,
	0x3F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x40, 0x41, 0x03, 0x42, 0x43, 0x00, 0x03, 0x44, 0x45,
	0x03, 0x46, 0x47, 0x00, 0x00, 0x03, 0x48, 0x49, 0x03, 0x4A, 0x4B, 0x00, 0x03, 0x4C, 0x4D, 0x03,
	0x4E, 0x4F, 0x00, 0x00, 0x00, 0x03, 0x50, 0x51, 0x03, 0x52, 0x53, 0x00, 0x03, 0x54, 0x55, 0x03,
	0x56, 0x57, 0x00, 0x00, 0x03, 0x58, 0x59, 0x03, 0x5A, 0x5B, 0x00, 0x03, 0x5C, 0x5D, 0x03, 0x5E,
	0x5F, 0x00, 0x00, 0x00, 0x00, 0x03, 0x60, 0x61, 0x03, 0x62, 0x63, 0x00, 0x03, 0x64, 0x65, 0x03,
	0x66, 0x67, 0x00, 0x00, 0x03, 0x68, 0x69, 0x03, 0x6A, 0x6B, 0x00, 0x03, 0x6C, 0x6D, 0x03, 0x6E,
	0x6F, 0x00, 0x00, 0x00, 0x03, 0x70, 0x71, 0x03, 0x72, 0x73, 0x00, 0x03, 0x74, 0x75, 0x03, 0x76,
	0x77, 0x00, 0x00, 0x03, 0x78, 0x79, 0x03, 0x7A, 0x7B, 0x00, 0x03, 0x7C, 0x7D, 0x03, 0x7E, 0x7F,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x80, 0x81, 0x03, 0x82, 0x83, 0x00, 0x03, 0x84, 0x85,
	0x03, 0x86, 0x87, 0x00, 0x00, 0x03, 0x88, 0x89, 0x03, 0x8A, 0x8B, 0x00, 0x03, 0x8C, 0x8D, 0x03,
	0x8E, 0x8F, 0x00, 0x00, 0x00, 0x03, 0x90, 0x91, 0x03, 0x92, 0x93, 0x00, 0x03, 0x94, 0x95, 0x03,
	0x96, 0x97, 0x00, 0x00, 0x03, 0x98, 0x99, 0x03, 0x9A, 0x9B, 0x00, 0x03, 0x9C, 0x9D, 0x03, 0x9E,
	0x9F, 0x00, 0x00, 0x00, 0x00, 0x03, 0xA0, 0xA1, 0x03, 0xA2, 0xA3, 0x00, 0x03, 0xA4, 0xA5, 0x03,
	0xA6, 0xA7, 0x00, 0x00, 0x03, 0xA8, 0xA9, 0x03, 0xAA, 0xAB, 0x00, 0x03, 0xAC, 0xAD, 0x03, 0xAE,
	0xAF, 0x00, 0x00, 0x00, 0x03, 0xB0, 0xB1, 0x03, 0xB2, 0xB3, 0x00, 0x03, 0xB4, 0xB5, 0x03, 0xB6,
	0xB7, 0x00, 0x00, 0x03, 0xB8, 0xB9, 0x03, 0xBA, 0xBB, 0x00, 0x03, 0xBC, 0xBD, 0x03, 0xBE, 0xBF,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xC0, 0xC1, 0x03, 0xC2, 0xC3, 0x00, 0x03, 0xC4, 0xC5, 0x03,
	0xC6, 0xC7, 0x00, 0x00, 0x03, 0xC8, 0xC9, 0x03, 0xCA, 0xCB, 0x00, 0x03, 0xCC, 0xCD, 0x03, 0xCE,
	0xCF, 0x00, 0x00, 0x00, 0x03, 0xD0, 0xD1, 0x03, 0xD2, 0xD3, 0x00, 0x03, 0xD4, 0xD5, 0x03, 0xD6,
	0xD7, 0x00, 0x00, 0x03, 0xD8, 0xD9, 0x03, 0xDA, 0xDB, 0x00, 0x03, 0xDC, 0xDD, 0x03, 0xDE, 0xDF,
	0x00, 0x00, 0x00, 0x00, 0x03, 0xE0, 0xE1, 0x03, 0xE2, 0xE3, 0x00, 0x03, 0xE4, 0xE5, 0x03, 0xE6,
	0xE7, 0x00, 0x00, 0x03, 0xE8, 0xE9, 0x03, 0xEA, 0xEB, 0x00, 0x03, 0xEC, 0xED, 0x03, 0xEE, 0xEF,
	0x00, 0x00, 0x00, 0x03, 0xF0, 0xF1, 0x03, 0xF2, 0xF3, 0x00, 0x03, 0xF4, 0xF5, 0x03, 0xF6, 0xF7,
	0x00, 0x00, 0x03, 0xF8, 0xF9, 0x03, 0xFA, 0xFB, 0x00, 0x03, 0xFC, 0xFD, 0x03, 0xFE, 0xFF,
}
