package protocol

import (
	"fmt"
	"net"
	"time"
)

// ServerEndpoint is an immutable (ip, port) pair as returned by the
// master client.
type ServerEndpoint struct {
	IP   net.IP
	Port uint16
}

func (e ServerEndpoint) String() string {
	return fmt.Sprintf("%s:%d", e.IP.String(), e.Port)
}

// PWad is an add-on data file a server is running. Optional and Hash are
// populated from later flag blocks (OptionalWads, PwadHashes) that refer
// back to this list by index, so callers must preserve insertion order.
type PWad struct {
	Name     string
	Optional bool
	Hash     string
}

// Player is one connected client as reported by PlayerData.
type Player struct {
	Name        string
	Score       int16
	Ping        uint16
	Team        uint8
	HasTeam     bool
	IsSpectator bool
	IsBot       bool
}

// Team is one of up to 4 teams a server may report.
type Team struct {
	Name      string
	ColorRGB  uint32
	Score     int16
}

// GameType describes the server's reported game mode instance (the
// catalogue entry plus the two booleans carried alongside it on the
// wire).
type GameType struct {
	Mode      *GameMode
	Instagib  bool
	Buckshot  bool
}

// ServerRecord is the full parse target for a single server query (C4).
// A record is constructed by the server client, mutated only during its
// own parse, then handed to the caller as a complete, read-only value.
type ServerRecord struct {
	Endpoint     ServerEndpoint
	IsOnline     bool
	IsQueried    bool
	ErrorMessage string

	QuerySentAt        time.Time
	ResponseReceivedAt time.Time
	PingMS             int

	GameVersion string
	Name        string
	Website     string
	Email       string

	Map   string
	IWad  string
	PWads []PWad

	MaxClients      uint8
	MaxPlayers      uint8
	CurrentPlayers  uint8

	GameType GameType

	IsPassworded         bool
	RequiresJoinPassword bool
	IsSecure             bool

	Skill    uint8
	BotSkill uint8

	FragLimit uint16
	TimeLimit uint16
	TimeLeft  uint16
	DuelLimit uint16
	PointLimit uint16
	WinLimit  uint16

	TeamDamage float32
	NumTeams   uint8
	Teams      [4]Team

	IsTesting      bool
	TestingArchive string

	Country string

	Players []Player
}

// IsEmpty reports whether the server has no connected players.
func (r *ServerRecord) IsEmpty() bool {
	return r.CurrentPlayers == 0
}

// IsFull reports whether the server has reached MaxClients.
func (r *ServerRecord) IsFull() bool {
	return r.CurrentPlayers >= r.MaxClients
}

// NewServerRecord returns a record for endpoint with all fields at
// their zero value, ready to be populated by a single parse.
func NewServerRecord(endpoint ServerEndpoint) *ServerRecord {
	return &ServerRecord{Endpoint: endpoint}
}
