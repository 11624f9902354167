package master

import (
	"github.com/zandronum/serverquery/internal/wire"
	"github.com/zandronum/serverquery/lib/protocol"
)

// reassembly tracks the multi-packet list state machine from spec §4.2:
// packets are keyed by packet_num so duplicates are idempotent and
// out-of-order arrival is tolerated, and the list of discovered
// endpoints preserves send order (packets by packet_num, blocks and
// ports within a packet in wire order) regardless of packet-level
// reordering.
type reassembly struct {
	seenPackets     map[byte]bool
	packetCounts    map[byte]int
	expectedPackets int
	readLastPacket  bool
	endpoints       []protocol.ServerEndpoint
}

func newReassembly() *reassembly {
	return &reassembly{seenPackets: make(map[byte]bool), packetCounts: make(map[byte]int)}
}

func (r *reassembly) done() bool {
	return r.readLastPacket && len(r.seenPackets) >= r.expectedPackets
}

// consume parses one decoded master datagram. It returns fatal=true with
// a terminal error (Banned, WrongVersion) when the attempt must abort
// immediately without retrying within this attempt's receive loop.
func (r *reassembly) consume(payload []byte, observer Observer) (fatal bool, err error) {
	c := wire.NewCursor(payload)
	code, ok := c.I32LE()
	if !ok {
		return false, nil
	}

	switch protocol.MasterResponseCode(code) {
	case protocol.MasterResponseBanned:
		return true, wire.ErrBanned
	case protocol.MasterResponseBad:
		return false, nil
	case protocol.MasterResponseWrongVersion:
		return true, wire.ErrWrongVersion
	case protocol.MasterResponseBeginPart:
		r.consumeBeginPart(c, observer)
		return false, nil
	default:
		return false, nil
	}
}

func (r *reassembly) consumeBeginPart(c *wire.Cursor, observer Observer) {
	packetNum, ok := c.U8()
	if !ok {
		return
	}
	if r.seenPackets[packetNum] {
		return // duplicate packet, already applied: idempotent
	}
	r.seenPackets[packetNum] = true
	if next := int(packetNum) + 1; next > r.expectedPackets {
		r.expectedPackets = next
	}

	insertAt := 0
	for p, n := range r.packetCounts {
		if p < packetNum {
			insertAt += n
		}
	}
	var found []protocol.ServerEndpoint
	defer func() {
		r.packetCounts[packetNum] = len(found)
		tail := append(found, r.endpoints[insertAt:]...)
		r.endpoints = append(r.endpoints[:insertAt], tail...)
	}()

	for {
		blockServerCount, ok := c.U8()
		if !ok {
			return
		}

		switch blockServerCount {
		case byte(protocol.MasterResponseEndPart):
			return
		case byte(protocol.MasterResponseEnd):
			r.readLastPacket = true
			return
		}

		ipBytes, ok := c.Bytes(4)
		if !ok {
			return
		}
		ip := make([]byte, 4)
		copy(ip, ipBytes)

		for i := byte(0); i < blockServerCount; i++ {
			port, ok := c.U16LE()
			if !ok {
				return
			}
			ep := protocol.ServerEndpoint{IP: ip, Port: port}
			found = append(found, ep)
			if observer != nil {
				observer.OnServerFound(ep)
			}
		}
	}
}
