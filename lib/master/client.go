// Package master implements the master-server discovery exchange (C3):
// a challenge followed by a packet-oriented, out-of-order and
// duplicate-tolerant reassembly of a multi-packet server list.
//
// Grounded on the teacher's internal/discover.Discoverer and UDPClient:
// a fresh socket per attempt, a bounded receive loop, and retry-with-
// backoff around a single synchronous exchange, reworked from the
// teacher's device-announcement protocol onto this spec's master-list
// protocol.
package master

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/zandronum/serverquery/internal/logger"
	"github.com/zandronum/serverquery/internal/wire"
	"github.com/zandronum/serverquery/lib/config"
	"github.com/zandronum/serverquery/lib/huffman"
	"github.com/zandronum/serverquery/lib/protocol"
)

var l = logger.NewFacility("master")

// pollInterval bounds how long a single ReadFrom call blocks before the
// receive loop re-checks ctx.Done(), giving outer cancellation and the
// overall receive deadline a chance to interrupt a blocked read (the
// "linked cancellation" described in spec §5).
const pollInterval = 200 * time.Millisecond

// Observer receives discovery progress events; all methods are optional
// (spec §6). A nil Observer is valid.
type Observer interface {
	OnServerFound(protocol.ServerEndpoint)
	OnRefreshCompleted(count int)
}

// Client queries a master server for the set of currently registered
// game-server endpoints.
type Client struct {
	cfg       config.Config
	transport Transport
	codec     *huffman.Codec
	observer  Observer
}

// New constructs a Client. transport and observer may be nil, in which
// case UDPTransport and a no-op observer are used.
func New(cfg config.Config, transport Transport, observer Observer) *Client {
	if transport == nil {
		transport = UDPTransport{}
	}
	return &Client{
		cfg:       cfg.WithDefaults(),
		transport: transport,
		codec:     huffman.Default,
		observer:  observer,
	}
}

// GetServerList runs the master exchange, retrying up to
// cfg.MasterRetryCount times. Banned, WrongVersion and cancellation are
// fatal and never retried; transport failures, timeouts and repeated Bad
// responses are retried until the last attempt's error is returned.
func (c *Client) GetServerList(ctx context.Context) ([]protocol.ServerEndpoint, error) {
	var lastErr error

	for attempt := uint32(0); attempt < c.cfg.MasterRetryCount; attempt++ {
		if ctx.Err() != nil {
			return nil, wire.ErrCancelled
		}

		endpoints, err := c.attempt(ctx)
		if err == nil {
			masterQueriesTotal.WithLabelValues("success").Inc()
			if c.observer != nil {
				c.observer.OnRefreshCompleted(len(endpoints))
			}
			return endpoints, nil
		}

		if errors.Is(err, wire.ErrPartialSuccess) {
			masterQueriesTotal.WithLabelValues("partial").Inc()
			if c.observer != nil {
				c.observer.OnRefreshCompleted(len(endpoints))
			}
			return endpoints, nil
		}

		if errors.Is(err, wire.ErrBanned) || errors.Is(err, wire.ErrWrongVersion) || errors.Is(err, wire.ErrCancelled) {
			masterQueriesTotal.WithLabelValues("fatal").Inc()
			return nil, err
		}

		lastErr = err
		masterQueriesTotal.WithLabelValues("retry").Inc()
		l.Debugf("attempt %d/%d failed: %v", attempt+1, c.cfg.MasterRetryCount, err)

		if attempt+1 < c.cfg.MasterRetryCount {
			select {
			case <-ctx.Done():
				return nil, wire.ErrCancelled
			case <-time.After(c.cfg.QueryRetryDelay()):
			}
		}
	}

	masterQueriesTotal.WithLabelValues("exhausted").Inc()
	return nil, fmt.Errorf("master: retries exhausted: %w", lastErr)
}

// attempt performs a single challenge + reassembly exchange.
func (c *Client) attempt(ctx context.Context) ([]protocol.ServerEndpoint, error) {
	masterIP, err := c.resolveHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wire.ErrResolveFailed, err)
	}

	conn, err := c.transport.ListenPacket()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wire.ErrTransportFailed, err)
	}
	defer conn.Close()

	challenge, err := c.codec.Encode(buildChallenge())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wire.ErrEncodeOverflow, err)
	}

	remote := &net.UDPAddr{IP: masterIP, Port: int(c.cfg.MasterPort)}
	if _, err := conn.WriteTo(challenge, remote); err != nil {
		return nil, fmt.Errorf("%w: %v", wire.ErrTransportFailed, err)
	}

	return c.receive(ctx, conn)
}

func (c *Client) resolveHost(ctx context.Context) (net.IP, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, c.cfg.MasterHost)
	if err != nil {
		return nil, err
	}
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4, nil
		}
	}
	return nil, errors.New("no IPv4 address found")
}

func buildChallenge() []byte {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(protocol.MasterChallengeCode))
	binary.LittleEndian.PutUint16(buf[4:6], uint16(protocol.MasterProtocolVersion))
	return buf
}

// receive runs the bounded receive loop and reassembly state machine
// described in spec §4.2.
func (c *Client) receive(ctx context.Context, conn net.PacketConn) ([]protocol.ServerEndpoint, error) {
	deadline := time.Now().Add(c.cfg.MasterReceiveDeadline())

	st := newReassembly()
	buf := make([]byte, 4096)

	for {
		if ctx.Err() != nil {
			return nil, wire.ErrCancelled
		}
		if time.Now().After(deadline) {
			break
		}
		if st.done() {
			break
		}

		readDeadline := time.Now().Add(pollInterval)
		if readDeadline.After(deadline) {
			readDeadline = deadline
		}
		conn.SetReadDeadline(readDeadline)

		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return st.endpoints, fmt.Errorf("%w: %v", wire.ErrTransportFailed, err)
		}

		decoded, err := c.codec.Decode(buf[:n])
		if err != nil {
			l.Debugf("discarding undecodable packet: %v", err)
			continue
		}

		fatal, err := st.consume(decoded, c.observer)
		if fatal {
			return nil, err
		}
	}

	if st.done() {
		return st.endpoints, nil
	}
	if len(st.endpoints) > 0 {
		return st.endpoints, wire.ErrPartialSuccess
	}
	return nil, wire.ErrTimeout
}
