package query

import (
	"encoding/binary"
	"testing"

	"github.com/zandronum/serverquery/internal/wire"
	"github.com/zandronum/serverquery/lib/protocol"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestS4GoodSingleMinimal(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(uint32(protocol.ServerResponseGoodSingle))...)
	buf = append(buf, u32le(0)...) // timestamp, discarded
	buf = append(buf, u32le(protocol.QFName)...)
	buf = append(buf, []byte("Server\x00")...)

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	r := newSegmentReassembler()
	c := &Client{}
	done := c.dispatch(buf, rec, r)

	if !done {
		t.Fatalf("expected GoodSingle to complete the record")
	}
	if rec.Name != "Server" {
		t.Fatalf("Name = %q, want Server", rec.Name)
	}
	if !rec.IsOnline || !rec.IsQueried {
		t.Fatalf("expected IsOnline and IsQueried true")
	}
	if rec.ErrorMessage != "" {
		t.Fatalf("unexpected error message: %q", rec.ErrorMessage)
	}
	if rec.MaxClients != 0 || rec.Map != "" || len(rec.Players) != 0 {
		t.Fatalf("expected all other fields at defaults")
	}
}

func TestFieldOrderCoverageArbitrarySubset(t *testing.T) {
	var body []byte
	flags := protocol.QFMapName | protocol.QFMaxClients | protocol.QFGameType | protocol.QFNumPlayers
	body = append(body, u32le(flags)...)
	body = append(body, []byte("MAP01\x00")...)
	body = append(body, 32) // MaxClients
	body = append(body, 3, 1, 0) // GameType: code=3 (Deathmatch), instagib=true, buckshot=false
	body = append(body, 0) // NumPlayers = 0, no PlayerData flag so nothing follows

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.ErrorMessage != "" {
		t.Fatalf("unexpected parse error: %q", rec.ErrorMessage)
	}
	if rec.Map != "MAP01" {
		t.Fatalf("Map = %q", rec.Map)
	}
	if rec.MaxClients != 32 {
		t.Fatalf("MaxClients = %d", rec.MaxClients)
	}
	if rec.GameType.Mode.Code != 3 || !rec.GameType.Instagib || rec.GameType.Buckshot {
		t.Fatalf("GameType = %+v", rec.GameType)
	}
	if rec.CurrentPlayers != 0 {
		t.Fatalf("CurrentPlayers = %d", rec.CurrentPlayers)
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected every byte consumed, %d remaining", c.Remaining())
	}
}

func TestLimitsTimeLeftOnlyWhenTimeLimitNonZero(t *testing.T) {
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, v)
		return b
	}

	var body []byte
	body = append(body, u32le(protocol.QFLimits)...)
	body = append(body, u16(10)...) // frag
	body = append(body, u16(0)...)  // time = 0, so time_left is absent
	body = append(body, u16(20)...) // duel
	body = append(body, u16(30)...) // point
	body = append(body, u16(40)...) // win

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.ErrorMessage != "" {
		t.Fatalf("unexpected parse error: %q", rec.ErrorMessage)
	}
	if rec.TimeLeft != 0 {
		t.Fatalf("TimeLeft should stay 0 when TimeLimit is 0, got %d", rec.TimeLeft)
	}
	if rec.DuelLimit != 20 || rec.PointLimit != 30 || rec.WinLimit != 40 {
		t.Fatalf("limits misaligned: %+v", rec)
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected every byte consumed, %d remaining", c.Remaining())
	}
}

func TestPWadOptionalAndHashOutOfRangeIgnored(t *testing.T) {
	var body []byte
	flags := protocol.QFPWads | protocol.QFOptionalWads | protocol.QFExtendedInfo
	body = append(body, u32le(flags)...)
	body = append(body, 2) // pwad count
	body = append(body, []byte("brutal.pk3\x00")...)
	body = append(body, []byte("extra.wad\x00")...)
	body = append(body, 3)    // optional-wads count
	body = append(body, 0, 1, 5) // indices, 5 is out of range and must be ignored
	body = append(body, u32le(protocol.EQFPwadHashes)...) // flags2
	body = append(body, 1)                                // hash count
	body = append(body, []byte("deadbeef\x00")...)

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.ErrorMessage != "" {
		t.Fatalf("unexpected parse error: %q", rec.ErrorMessage)
	}
	if len(rec.PWads) != 2 {
		t.Fatalf("expected 2 pwads, got %d", len(rec.PWads))
	}
	if !rec.PWads[0].Optional || !rec.PWads[1].Optional {
		t.Fatalf("expected both pwads marked optional: %+v", rec.PWads)
	}
	if rec.PWads[0].Hash != "deadbeef" {
		t.Fatalf("expected first pwad hash set, got %+v", rec.PWads[0])
	}
	if rec.PWads[1].Hash != "" {
		t.Fatalf("second pwad hash should be untouched, got %q", rec.PWads[1].Hash)
	}
}

func TestShortReadStopsAtFailurePoint(t *testing.T) {
	var body []byte
	body = append(body, u32le(protocol.QFName|protocol.QFMaxClients)...)
	body = append(body, []byte("partial\x00")...) // MaxClients byte is missing entirely

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.Name != "partial" {
		t.Fatalf("Name should have been populated before the short read, got %q", rec.Name)
	}
	if rec.ErrorMessage == "" {
		t.Fatalf("expected a short-read error message")
	}
}

func TestCountryNormalizedOnParse(t *testing.T) {
	var body []byte
	body = append(body, u32le(protocol.QFExtendedInfo)...)
	body = append(body, u32le(protocol.EQFCountry)...)
	body = append(body, []byte("usa")...)

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.Country != "US" {
		t.Fatalf("Country = %q, want US", rec.Country)
	}
}

func TestPlayerTeamFieldConditionalOnTeamInfoNumber(t *testing.T) {
	// TeamInfoNumber's own bytes sit later in wire order (bit 21) than
	// PlayerData (bit 20), but the player record's trailing team byte is
	// gated on the bit being present in the up-front flags mask, not on
	// read order — so it must appear here even though TeamInfoNumber's
	// count byte hasn't been consumed yet when parsePlayer runs.
	var body []byte
	flags := protocol.QFNumPlayers | protocol.QFPlayerData | protocol.QFTeamInfoNumber
	body = append(body, u32le(flags)...)
	body = append(body, 1) // current_players
	body = append(body, []byte("Alice\x00")...)
	body = append(body, 10, 0) // score i16 = 10
	pingBuf := make([]byte, 2)
	binary.LittleEndian.PutUint16(pingBuf, 42)
	body = append(body, pingBuf...)
	body = append(body, 0, 0) // is_spectator, is_bot
	body = append(body, 1)    // team
	body = append(body, 99)   // time_on_server

	body = append(body, 2) // num_teams

	rec := protocol.NewServerRecord(protocol.ServerEndpoint{})
	c := wire.NewCursor(body)
	parseServerDataBlock(c, rec)

	if rec.ErrorMessage != "" {
		t.Fatalf("unexpected parse error: %q", rec.ErrorMessage)
	}
	if len(rec.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(rec.Players))
	}
	if !rec.Players[0].HasTeam || rec.Players[0].Team != 1 {
		t.Fatalf("expected player team=1 populated, got %+v", rec.Players[0])
	}
	if rec.NumTeams != 2 {
		t.Fatalf("NumTeams = %d, want 2", rec.NumTeams)
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected every byte consumed, %d remaining", c.Remaining())
	}
}
