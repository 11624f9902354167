package query

import (
	"github.com/zandronum/serverquery/internal/country"
	"github.com/zandronum/serverquery/internal/wire"
	"github.com/zandronum/serverquery/lib/protocol"
)

// parseServerDataBlock reads the flags-gated record body starting right
// after the timestamp (spec §4.3's field table). Field order is fixed
// and mandatory; a short read stops the parse at the point of failure
// and leaves remaining fields at their zero value, per spec §7.
func parseServerDataBlock(c *wire.Cursor, rec *protocol.ServerRecord) {
	flags, ok := c.U32LE()
	if !ok {
		shortRead(rec, "flags")
		return
	}

	// The player record's trailing team byte is gated on whether the
	// TeamInfoNumber bit was requested at all, which is known from flags
	// up front — not on whether TeamInfoNumber's own bytes (wire order:
	// bit 21, after PlayerData's bit 20) have been read yet.
	hasTeamInfoNumber := flags&protocol.QFTeamInfoNumber != 0

	if flags&protocol.QFName != 0 {
		if rec.Name, ok = c.CString(); !ok {
			shortRead(rec, "Name")
			return
		}
	}
	if flags&protocol.QFURL != 0 {
		if rec.Website, ok = c.CString(); !ok {
			shortRead(rec, "Url")
			return
		}
	}
	if flags&protocol.QFEmail != 0 {
		if rec.Email, ok = c.CString(); !ok {
			shortRead(rec, "Email")
			return
		}
	}
	if flags&protocol.QFMapName != 0 {
		if rec.Map, ok = c.CString(); !ok {
			shortRead(rec, "MapName")
			return
		}
	}
	if flags&protocol.QFMaxClients != 0 {
		if rec.MaxClients, ok = c.U8(); !ok {
			shortRead(rec, "MaxClients")
			return
		}
	}
	if flags&protocol.QFMaxPlayers != 0 {
		if rec.MaxPlayers, ok = c.U8(); !ok {
			shortRead(rec, "MaxPlayers")
			return
		}
	}
	if flags&protocol.QFPWads != 0 {
		count, ok2 := c.U8()
		if !ok2 {
			shortRead(rec, "PWads count")
			return
		}
		for i := byte(0); i < count; i++ {
			name, ok3 := c.CString()
			if !ok3 {
				shortRead(rec, "PWads name")
				return
			}
			rec.PWads = append(rec.PWads, protocol.PWad{Name: name})
		}
	}
	if flags&protocol.QFGameType != 0 {
		code, ok2 := c.U8()
		if !ok2 {
			shortRead(rec, "GameType code")
			return
		}
		instagib, ok3 := c.Bool()
		if !ok3 {
			shortRead(rec, "GameType instagib")
			return
		}
		buckshot, ok4 := c.Bool()
		if !ok4 {
			shortRead(rec, "GameType buckshot")
			return
		}
		rec.GameType = protocol.GameType{
			Mode:     protocol.GameModeByCode(int(code)),
			Instagib: instagib,
			Buckshot: buckshot,
		}
	}
	if flags&protocol.QFGameName != 0 {
		if _, ok = c.CString(); !ok { // discarded per spec §4.3
			shortRead(rec, "GameName")
			return
		}
	}
	if flags&protocol.QFIWad != 0 {
		if rec.IWad, ok = c.CString(); !ok {
			shortRead(rec, "Iwad")
			return
		}
	}
	if flags&protocol.QFForcePassword != 0 {
		if rec.IsPassworded, ok = c.Bool(); !ok {
			shortRead(rec, "ForcePassword")
			return
		}
	}
	if flags&protocol.QFForceJoinPassword != 0 {
		if rec.RequiresJoinPassword, ok = c.Bool(); !ok {
			shortRead(rec, "ForceJoinPassword")
			return
		}
	}
	if flags&protocol.QFGameSkill != 0 {
		if rec.Skill, ok = c.U8(); !ok {
			shortRead(rec, "GameSkill")
			return
		}
	}
	if flags&protocol.QFBotSkill != 0 {
		if rec.BotSkill, ok = c.U8(); !ok {
			shortRead(rec, "BotSkill")
			return
		}
	}
	if flags&protocol.QFLimits != 0 {
		if rec.FragLimit, ok = c.U16LE(); !ok {
			shortRead(rec, "FragLimit")
			return
		}
		if rec.TimeLimit, ok = c.U16LE(); !ok {
			shortRead(rec, "TimeLimit")
			return
		}
		if rec.TimeLimit != 0 {
			if rec.TimeLeft, ok = c.U16LE(); !ok {
				shortRead(rec, "TimeLeft")
				return
			}
		}
		if rec.DuelLimit, ok = c.U16LE(); !ok {
			shortRead(rec, "DuelLimit")
			return
		}
		if rec.PointLimit, ok = c.U16LE(); !ok {
			shortRead(rec, "PointLimit")
			return
		}
		if rec.WinLimit, ok = c.U16LE(); !ok {
			shortRead(rec, "WinLimit")
			return
		}
	}
	if flags&protocol.QFTeamDamage != 0 {
		if rec.TeamDamage, ok = c.F32LE(); !ok {
			shortRead(rec, "TeamDamage")
			return
		}
	}
	if flags&protocol.QFTeamScores != 0 {
		if _, ok = c.I16LE(); !ok { // deprecated, discarded
			shortRead(rec, "TeamScores")
			return
		}
		if _, ok = c.I16LE(); !ok {
			shortRead(rec, "TeamScores")
			return
		}
	}
	if flags&protocol.QFNumPlayers != 0 {
		if rec.CurrentPlayers, ok = c.U8(); !ok {
			shortRead(rec, "NumPlayers")
			return
		}
	}
	if flags&protocol.QFPlayerData != 0 {
		for i := byte(0); i < rec.CurrentPlayers; i++ {
			p, ok2 := parsePlayer(c, hasTeamInfoNumber)
			if !ok2 {
				shortRead(rec, "PlayerData")
				return
			}
			rec.Players = append(rec.Players, p)
		}
	}
	if flags&protocol.QFTeamInfoNumber != 0 {
		if rec.NumTeams, ok = c.U8(); !ok {
			shortRead(rec, "TeamInfoNumber")
			return
		}
	}
	if flags&protocol.QFTeamInfoName != 0 {
		for i := uint8(0); i < rec.NumTeams && i < 4; i++ {
			name, ok2 := c.CString()
			if !ok2 {
				shortRead(rec, "TeamInfoName")
				return
			}
			rec.Teams[i].Name = name
		}
	}
	if flags&protocol.QFTeamInfoColor != 0 {
		for i := uint8(0); i < rec.NumTeams && i < 4; i++ {
			rgb, ok2 := c.U32LE()
			if !ok2 {
				shortRead(rec, "TeamInfoColor")
				return
			}
			rec.Teams[i].ColorRGB = rgb
		}
	}
	if flags&protocol.QFTeamInfoScore != 0 {
		for i := uint8(0); i < rec.NumTeams && i < 4; i++ {
			score, ok2 := c.I16LE()
			if !ok2 {
				shortRead(rec, "TeamInfoScore")
				return
			}
			rec.Teams[i].Score = score
		}
	}
	if flags&protocol.QFTestingServer != 0 {
		if rec.IsTesting, ok = c.Bool(); !ok {
			shortRead(rec, "TestingServer")
			return
		}
		if rec.TestingArchive, ok = c.CString(); !ok {
			shortRead(rec, "TestingServer archive")
			return
		}
	}
	if flags&protocol.QFAllDMFlags != 0 {
		count, ok2 := c.U8()
		if !ok2 {
			shortRead(rec, "AllDmFlags count")
			return
		}
		for i := byte(0); i < count; i++ {
			if _, ok = c.U32LE(); !ok { // discarded, not modeled in ServerRecord
				shortRead(rec, "AllDmFlags")
				return
			}
		}
	}
	if flags&protocol.QFSecuritySettings != 0 {
		if rec.IsSecure, ok = c.Bool(); !ok {
			shortRead(rec, "SecuritySettings")
			return
		}
	}
	if flags&protocol.QFOptionalWads != 0 {
		count, ok2 := c.U8()
		if !ok2 {
			shortRead(rec, "OptionalWads count")
			return
		}
		for i := byte(0); i < count; i++ {
			idx, ok3 := c.U8()
			if !ok3 {
				shortRead(rec, "OptionalWads index")
				return
			}
			if int(idx) < len(rec.PWads) {
				rec.PWads[idx].Optional = true
			} // index >= len(pwads) ignored, spec §8 invariant 9
		}
	}
	if flags&protocol.QFDeh != 0 {
		count, ok2 := c.U8()
		if !ok2 {
			shortRead(rec, "Deh count")
			return
		}
		for i := byte(0); i < count; i++ {
			name, ok3 := c.CString()
			if !ok3 {
				shortRead(rec, "Deh")
				return
			}
			rec.PWads = append(rec.PWads, protocol.PWad{Name: name})
		}
	}
	if flags&protocol.QFExtendedInfo != 0 {
		flags2, ok2 := c.U32LE()
		if !ok2 {
			shortRead(rec, "ExtendedInfo flags2")
			return
		}
		parseExtendedBlock(c, rec, flags2)
	}
}

func parsePlayer(c *wire.Cursor, hasTeamInfoNumber bool) (protocol.Player, bool) {
	var p protocol.Player
	var ok bool

	if p.Name, ok = c.CString(); !ok {
		return p, false
	}
	if p.Score, ok = c.I16LE(); !ok {
		return p, false
	}
	if p.Ping, ok = c.U16LE(); !ok {
		return p, false
	}
	if p.IsSpectator, ok = c.Bool(); !ok {
		return p, false
	}
	if p.IsBot, ok = c.Bool(); !ok {
		return p, false
	}
	if hasTeamInfoNumber {
		if p.Team, ok = c.U8(); !ok {
			return p, false
		}
		p.HasTeam = true
	}
	if _, ok = c.U8(); !ok { // time_on_server, discarded
		return p, false
	}
	return p, true
}

// parseExtendedBlock reads the flags2-gated fields (spec §4.3). The
// GameModeName/ShortName bits are read but, per the "ignore" policy
// recorded for the open question on override behavior, never overwrite
// the catalogue-derived GameType.Mode name.
func parseExtendedBlock(c *wire.Cursor, rec *protocol.ServerRecord, flags2 uint32) {
	if flags2&protocol.EQFPwadHashes != 0 {
		count, ok := c.U8()
		if !ok {
			return
		}
		for i := byte(0); i < count; i++ {
			hash, ok2 := c.CString()
			if !ok2 {
				return
			}
			if int(i) < len(rec.PWads) {
				rec.PWads[i].Hash = hash
			} // index >= len(pwads) ignored, same invariant as OptionalWads
		}
	}
	if flags2&protocol.EQFCountry != 0 {
		raw, ok := c.Bytes(3)
		if !ok {
			return
		}
		rec.Country = country.Normalize(raw)
	}
	if flags2&protocol.EQFGameModeName != 0 {
		if _, ok := c.CString(); !ok { // ignored per default override policy
			return
		}
	}
	if flags2&protocol.EQFGameModeShortName != 0 {
		if _, ok := c.CString(); !ok {
			return
		}
	}
	if flags2&protocol.EQFVoiceChat != 0 {
		if _, ok := c.U8(); !ok {
			return
		}
	}
}

// shortRead records a non-fatal parse stop point: the record keeps
// whatever fields were already populated (spec §7).
func shortRead(rec *protocol.ServerRecord, field string) {
	rec.ErrorMessage = "short read while parsing field: " + field
}
