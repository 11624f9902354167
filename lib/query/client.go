// Package query implements the per-server query exchange (C4): a
// challenge followed by dispatch on the decoded response code, with
// optional segment reassembly and the flag-gated server data block
// parser.
//
// Grounded on the same internal/discover.UDPClient shape as lib/master
// (fresh socket per call, bounded receive loop), reworked for a
// request/response exchange that always returns a populated record
// rather than an error.
package query

import (
	"context"
	"encoding/binary"
	"net"
	"time"

	"github.com/zandronum/serverquery/internal/logger"
	"github.com/zandronum/serverquery/lib/config"
	"github.com/zandronum/serverquery/lib/huffman"
	"github.com/zandronum/serverquery/lib/protocol"
)

var l = logger.NewFacility("query")

const pollInterval = 100 * time.Millisecond

// Transport is the UDP collaborator a Client consumes.
type Transport interface {
	DialUDP(ctx context.Context, endpoint protocol.ServerEndpoint) (net.Conn, error)
}

// UDPTransport is the default Transport: one socket per call, connected
// directly to the endpoint so reads only see datagrams from that peer.
type UDPTransport struct{}

func (UDPTransport) DialUDP(_ context.Context, endpoint protocol.ServerEndpoint) (net.Conn, error) {
	addr := &net.UDPAddr{IP: endpoint.IP, Port: int(endpoint.Port)}
	return net.DialUDP("udp4", nil, addr)
}

// Client queries a single game server for its full state (spec §4.3).
type Client struct {
	cfg       config.Config
	transport Transport
	codec     *huffman.Codec
	clock     clock
}

type clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New constructs a Client. A nil transport uses UDPTransport.
func New(cfg config.Config, transport Transport) *Client {
	if transport == nil {
		transport = UDPTransport{}
	}
	return &Client{
		cfg:       cfg.WithDefaults(),
		transport: transport,
		codec:     huffman.Default,
		clock:     realClock{},
	}
}

// QueryServer always returns a non-nil record (spec §4.3, §7): network
// or parse errors populate ErrorMessage rather than returning an error.
func (c *Client) QueryServer(ctx context.Context, endpoint protocol.ServerEndpoint) *protocol.ServerRecord {
	rec := protocol.NewServerRecord(endpoint)
	rec.QuerySentAt = c.clock.Now()

	conn, err := c.transport.DialUDP(ctx, endpoint)
	if err != nil {
		rec.ErrorMessage = "transport: " + err.Error()
		return rec
	}
	defer conn.Close()

	challenge, err := c.codec.Encode(buildChallenge(rec.QuerySentAt))
	if err != nil {
		rec.ErrorMessage = "encode: " + err.Error()
		return rec
	}

	if _, err := conn.Write(challenge); err != nil {
		rec.ErrorMessage = "transport: " + err.Error()
		return rec
	}

	c.receive(ctx, conn, rec)
	return rec
}

// buildChallenge lays out code, query_flags, timestamp_ms,
// extended_query_flags, then the segmentation-preference byte, in that
// exact order (spec §4.3).
func buildChallenge(sentAt time.Time) []byte {
	buf := make([]byte, 17)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(protocol.ServerChallengeCode))
	binary.LittleEndian.PutUint32(buf[4:8], protocol.StandardQuery)
	msOfDay := uint32(sentAt.Hour())*3600000 + uint32(sentAt.Minute())*60000 +
		uint32(sentAt.Second())*1000 + uint32(sentAt.Nanosecond()/1e6)
	binary.LittleEndian.PutUint32(buf[8:12], msOfDay)
	binary.LittleEndian.PutUint32(buf[12:16], protocol.ExtendedStandardQuery)
	buf[16] = 0
	return buf
}

// receive runs the server_query_timeout-bounded receive loop, dispatching
// on the response code and populating rec in place.
func (c *Client) receive(ctx context.Context, conn net.Conn, rec *protocol.ServerRecord) {
	deadline := time.Now().Add(c.cfg.ServerQueryTimeout())
	reassembler := newSegmentReassembler()
	buf := make([]byte, 8192)

	for {
		if ctx.Err() != nil {
			rec.ErrorMessage = "cancelled"
			return
		}
		if time.Now().After(deadline) {
			rec.ErrorMessage = "timeout"
			return
		}

		readDeadline := time.Now().Add(pollInterval)
		if readDeadline.After(deadline) {
			readDeadline = deadline
		}
		conn.SetReadDeadline(readDeadline)

		n, err := conn.Read(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			rec.ErrorMessage = "transport: " + err.Error()
			return
		}

		decoded, err := c.codec.Decode(buf[:n])
		if err != nil {
			l.Debugf("discarding undecodable datagram: %v", err)
			continue
		}

		if done := c.dispatch(decoded, rec, reassembler); done {
			rec.ResponseReceivedAt = time.Now()
			rec.PingMS = int(rec.ResponseReceivedAt.Sub(rec.QuerySentAt) / time.Millisecond)
			return
		}
	}
}
