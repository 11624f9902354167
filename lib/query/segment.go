package query

// segmentReassembler accumulates a GoodSegmented response's segments into
// a single buffer keyed by authoritative offset (spec §4.3). Segments may
// arrive out of order and duplicates are overwrites, so reassembly only
// needs to track which segment_no values have landed.
type segmentReassembler struct {
	totalSize     int
	totalSegments int
	seen          map[byte]bool
	buf           []byte
}

func newSegmentReassembler() *segmentReassembler {
	return &segmentReassembler{seen: make(map[byte]bool)}
}

// add places one segment's payload into the buffer at its offset. The
// buffer is (re)sized to totalSize on the first segment seen; later
// segments are trusted to agree on totalSize since all segments of one
// response share it.
func (s *segmentReassembler) add(segmentNo, totalSegments byte, offset, segmentSize, totalSize uint16, payload []byte) {
	if s.buf == nil {
		s.totalSize = int(totalSize)
		s.totalSegments = int(totalSegments)
		s.buf = make([]byte, s.totalSize)
	}
	s.seen[segmentNo] = true

	end := int(offset) + int(segmentSize)
	if end > len(s.buf) {
		end = len(s.buf)
	}
	n := end - int(offset)
	if n > 0 && int(offset) <= len(s.buf) && n <= len(payload) {
		copy(s.buf[offset:end], payload[:n])
	}
}

// done reports whether the number of distinct segment_no values seen has
// reached totalSegments. The segment numbers themselves are not checked
// against the range [0, totalSegments).
func (s *segmentReassembler) done() bool {
	if s.totalSegments == 0 {
		return false
	}
	return len(s.seen) >= s.totalSegments
}
