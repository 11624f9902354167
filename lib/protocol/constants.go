// Package protocol defines the passive wire record types (C2) and the
// constants shared by the master and server query exchanges (§6): magic
// numbers, response codes, and the query-flag bitmasks.
package protocol

// Master exchange constants.
const (
	DefaultMasterHost = "master.zandronum.com"
	DefaultMasterPort = 15300

	MasterChallengeCode   int32 = 5660028
	MasterProtocolVersion int16 = 2
)

// MasterResponseCode identifies the first 4 bytes of a decoded master
// datagram.
type MasterResponseCode int32

const (
	MasterResponseGood         MasterResponseCode = 0
	MasterResponseServer       MasterResponseCode = 1
	MasterResponseEnd          MasterResponseCode = 2
	MasterResponseBanned       MasterResponseCode = 3
	MasterResponseBad          MasterResponseCode = 4
	MasterResponseWrongVersion MasterResponseCode = 5
	MasterResponseBeginPart    MasterResponseCode = 6
	MasterResponseEndPart      MasterResponseCode = 7
	MasterResponseServerBlock  MasterResponseCode = 8
)

// Server exchange constants.
const ServerChallengeCode int32 = 199

// ServerResponseCode identifies the first 4 bytes of a decoded server
// datagram.
type ServerResponseCode int32

const (
	ServerResponseGoodSingle    ServerResponseCode = 5660023
	ServerResponseWait          ServerResponseCode = 5660024
	ServerResponseBanned        ServerResponseCode = 5660025
	ServerResponseGoodSegmented ServerResponseCode = 5660032
)

// Query flag bits (first 32-bit flags mask in the server data block, and
// the query_flags field of the challenge). Values exactly as the
// reference wire contract; never renumber these.
const (
	QFName                 uint32 = 0x00000001
	QFURL                  uint32 = 0x00000002
	QFEmail                uint32 = 0x00000004
	QFMapName              uint32 = 0x00000008
	QFMaxClients           uint32 = 0x00000010
	QFMaxPlayers           uint32 = 0x00000020
	QFPWads                uint32 = 0x00000040
	QFGameType             uint32 = 0x00000080
	QFGameName             uint32 = 0x00000100
	QFIWad                 uint32 = 0x00000200
	QFForcePassword        uint32 = 0x00000400
	QFForceJoinPassword    uint32 = 0x00000800
	QFGameSkill            uint32 = 0x00001000
	QFBotSkill             uint32 = 0x00002000
	QFLimits               uint32 = 0x00010000
	QFTeamDamage           uint32 = 0x00020000
	QFTeamScores           uint32 = 0x00040000 // deprecated, read and discarded
	QFNumPlayers           uint32 = 0x00080000
	QFPlayerData           uint32 = 0x00100000
	QFTeamInfoNumber       uint32 = 0x00200000
	QFTeamInfoName         uint32 = 0x00400000
	QFTeamInfoColor        uint32 = 0x00800000
	QFTeamInfoScore        uint32 = 0x01000000
	QFTestingServer        uint32 = 0x02000000
	QFAllDMFlags           uint32 = 0x08000000
	QFSecuritySettings     uint32 = 0x10000000
	QFOptionalWads         uint32 = 0x20000000
	QFDeh                  uint32 = 0x40000000
	QFExtendedInfo         uint32 = 0x80000000
)

// StandardQuery is every bit the client sets on every query per spec §4.3.
const StandardQuery = QFName | QFURL | QFEmail | QFMapName | QFMaxClients |
	QFMaxPlayers | QFPWads | QFGameType | QFIWad | QFForcePassword |
	QFForceJoinPassword | QFLimits | QFNumPlayers | QFPlayerData |
	QFTeamInfoNumber | QFTeamInfoName | QFTeamInfoScore | QFGameSkill |
	QFTestingServer | QFAllDMFlags | QFSecuritySettings | QFOptionalWads |
	QFDeh | QFExtendedInfo

// Extended query flag bits (flags2, carried inside the ExtendedInfo block).
const (
	EQFPwadHashes        uint32 = 0x01
	EQFCountry           uint32 = 0x02
	EQFGameModeName      uint32 = 0x04
	EQFGameModeShortName uint32 = 0x08
	EQFVoiceChat         uint32 = 0x10
)

// ExtendedStandardQuery is every extended bit the client requests.
const ExtendedStandardQuery = EQFPwadHashes | EQFCountry | EQFGameModeName
