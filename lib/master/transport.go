package master

import "net"

// Transport is the UDP collaborator the master client consumes (spec
// §1). A fresh socket is obtained per attempt and disposed afterward, so
// stray buffered packets from a previous attempt never leak into the
// next one (spec §5).
type Transport interface {
	ListenPacket() (net.PacketConn, error)
}

// UDPTransport is the default Transport, binding an ephemeral UDP4 port.
type UDPTransport struct{}

func (UDPTransport) ListenPacket() (net.PacketConn, error) {
	return net.ListenUDP("udp4", nil)
}
