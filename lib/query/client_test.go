package query

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/zandronum/serverquery/lib/config"
	"github.com/zandronum/serverquery/lib/huffman"
	"github.com/zandronum/serverquery/lib/protocol"
)

// TestQueryServerGoodSingleEndToEnd exercises the real UDP transport,
// challenge encoding and response decoding together against a loopback
// fake server, in the teacher's real-socket test style.
func TestQueryServerGoodSingleEndToEnd(t *testing.T) {
	srv, err := net.ListenUDP("udp4", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	port := srv.LocalAddr().(*net.UDPAddr).Port

	var resp []byte
	resp = append(resp, u32le(uint32(protocol.ServerResponseGoodSingle))...)
	resp = append(resp, u32le(0)...) // timestamp echo
	resp = append(resp, u32le(protocol.QFName)...)
	resp = append(resp, []byte("Loopback\x00")...)

	encodedResp, err := huffman.Default.Encode(resp)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 2048)
		srv.SetReadDeadline(time.Now().Add(2 * time.Second))
		n, addr, err := srv.ReadFromUDP(buf)
		if err != nil {
			return
		}
		_ = n
		srv.WriteToUDP(encodedResp, addr)
	}()

	cfg := config.Default()
	client := New(cfg, nil)
	endpoint := protocol.ServerEndpoint{IP: net.IPv4(127, 0, 0, 1), Port: uint16(port)}

	rec := client.QueryServer(context.Background(), endpoint)
	<-done

	if !rec.IsOnline || !rec.IsQueried {
		t.Fatalf("expected record online and queried: %+v", rec)
	}
	if rec.Name != "Loopback" {
		t.Fatalf("Name = %q, want Loopback", rec.Name)
	}
	if rec.PingMS < 0 {
		t.Fatalf("PingMS should be non-negative, got %d", rec.PingMS)
	}
}

func TestQueryServerTimeoutReturnsRecordNotError(t *testing.T) {
	srv, err := net.ListenUDP("udp4", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()
	port := srv.LocalAddr().(*net.UDPAddr).Port

	cfg := config.Default()
	cfg.ServerQueryTimeoutMS = 200
	client := New(cfg, nil)
	endpoint := protocol.ServerEndpoint{IP: net.IPv4(127, 0, 0, 1), Port: uint16(port)}

	rec := client.QueryServer(context.Background(), endpoint)

	if rec == nil {
		t.Fatalf("QueryServer must always return a record, never nil")
	}
	if rec.IsQueried {
		t.Fatalf("expected IsQueried false on a pure timeout with no response at all")
	}
	if rec.ErrorMessage == "" {
		t.Fatalf("expected a timeout error message")
	}
}
