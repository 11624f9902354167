package query

import (
	"github.com/zandronum/serverquery/internal/wire"
	"github.com/zandronum/serverquery/lib/protocol"
)

// dispatch handles one decoded datagram and reports whether rec is now
// complete (either a terminal response or a fully reassembled segmented
// one). Unrecognized codes are ignored so the receive loop keeps waiting.
func (c *Client) dispatch(decoded []byte, rec *protocol.ServerRecord, r *segmentReassembler) bool {
	cur := wire.NewCursor(decoded)
	code, ok := cur.I32LE()
	if !ok {
		return false
	}

	switch protocol.ServerResponseCode(code) {
	case protocol.ServerResponseBanned:
		rec.ErrorMessage = "Banned from server"
		rec.IsOnline = false
		rec.IsQueried = true
		return true

	case protocol.ServerResponseWait:
		rec.ErrorMessage = "Server busy"
		rec.IsOnline = true
		rec.IsQueried = true
		return true

	case protocol.ServerResponseGoodSingle:
		if _, ok := cur.Bytes(4); !ok { // timestamp echo, discarded
			rec.ErrorMessage = "short read: missing timestamp"
			rec.IsOnline = true
			rec.IsQueried = true
			return true
		}
		rec.IsOnline = true
		rec.IsQueried = true
		parseServerDataBlock(cur, rec)
		return true

	case protocol.ServerResponseGoodSegmented:
		segmentNo, ok := cur.U8()
		if !ok {
			return false
		}
		segmentNo &= 0x7F
		totalSegments, ok := cur.U8()
		if !ok {
			return false
		}
		offset, ok := cur.U16LE()
		if !ok {
			return false
		}
		segmentSize, ok := cur.U16LE()
		if !ok {
			return false
		}
		totalSize, ok := cur.U16LE()
		if !ok {
			return false
		}
		payload, ok := cur.Bytes(int(segmentSize))
		if !ok {
			return false
		}

		r.add(segmentNo, totalSegments, offset, segmentSize, totalSize, payload)
		if !r.done() {
			return false
		}

		rec.IsOnline = true
		rec.IsQueried = true
		full := wire.NewCursor(r.buf)
		if _, ok := full.Bytes(4); !ok { // leading timestamp, intact in the reassembled buffer
			rec.ErrorMessage = "short read: reassembled buffer missing timestamp"
			return true
		}
		parseServerDataBlock(full, rec)
		return true

	default:
		return false
	}
}
