package protocol

import "fmt"

// GameMode is one entry of the closed game-mode catalogue (spec §3):
// code is the wire value carried in the GameType flag block.
type GameMode struct {
	Code      int
	Name      string
	ShortName string
	IsTeam    bool
}

// gameModes is the closed set of 17 entries keyed by wire code -1..15.
// Index 0 is the Unknown fallback at code -1; index i (i>=1) holds the
// entry for wire code i-1.
var gameModes = [17]*GameMode{
	{Code: -1, Name: "Unknown", ShortName: "?", IsTeam: false},
	{Code: 0, Name: "Cooperative", ShortName: "COOP", IsTeam: false},
	{Code: 1, Name: "Survival", ShortName: "SURV", IsTeam: false},
	{Code: 2, Name: "Invasion", ShortName: "INV", IsTeam: false},
	{Code: 3, Name: "Deathmatch", ShortName: "DM", IsTeam: false},
	{Code: 4, Name: "Team Play", ShortName: "TEAM", IsTeam: true},
	{Code: 5, Name: "Duel", ShortName: "DUEL", IsTeam: false},
	{Code: 6, Name: "Terminator", ShortName: "TERM", IsTeam: false},
	{Code: 7, Name: "Last Man Standing", ShortName: "LMS", IsTeam: false},
	{Code: 8, Name: "Team LMS", ShortName: "TLMS", IsTeam: true},
	{Code: 9, Name: "Possession", ShortName: "POSS", IsTeam: false},
	{Code: 10, Name: "Team Possession", ShortName: "TPOSS", IsTeam: true},
	{Code: 11, Name: "Team Game", ShortName: "TGAME", IsTeam: true},
	{Code: 12, Name: "Capture The Flag", ShortName: "CTF", IsTeam: true},
	{Code: 13, Name: "One Flag CTF", ShortName: "1FCTF", IsTeam: true},
	{Code: 14, Name: "Skulltag", ShortName: "ST", IsTeam: true},
	{Code: 15, Name: "Domination", ShortName: "DOM", IsTeam: true},
}

// UnknownGameMode is the catalogue's fallback entry.
var UnknownGameMode = gameModes[0]

// GameModeByCode resolves a wire code to its catalogue entry. Unknown
// codes (including values outside -1..15) resolve to UnknownGameMode
// rather than failing, per spec §3.
func GameModeByCode(code int) *GameMode {
	if code < -1 || code > 15 {
		return UnknownGameMode
	}
	return gameModes[code+1]
}

func (m *GameMode) String() string {
	if m == nil {
		return UnknownGameMode.Name
	}
	return fmt.Sprintf("%s (%s)", m.Name, m.ShortName)
}
