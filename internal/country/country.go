// Package country normalizes the 3-byte country field carried in the
// server query's extended info block into an uppercase ISO alpha-2
// code, or the "??" fallback for empty/unrecognized input. Kept out of
// lib/protocol because it is table lookup, not a wire-shape concern.
package country

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unknown is returned for empty or unrecognized codes.
const Unknown = "??"

var upper = cases.Upper(language.Und)

// legacyThreeLetter maps the historical 3-letter abbreviations some
// Zandronum/Skulltag servers still send to their ISO alpha-2 equivalent.
// Closed set; codes outside it fall back to Unknown rather than failing.
var legacyThreeLetter = map[string]string{
	"USA": "US", "GBR": "GB", "DEU": "DE", "FRA": "FR", "ESP": "ES",
	"ITA": "IT", "POL": "PL", "RUS": "RU", "BRA": "BR", "CAN": "CA",
	"AUS": "AU", "NLD": "NL", "SWE": "SE", "NOR": "NO", "FIN": "FI",
	"DNK": "DK", "CHE": "CH", "AUT": "AT", "BEL": "BE", "PRT": "PT",
	"CZE": "CZ", "UKR": "UA", "ROU": "RO", "HUN": "HU", "GRC": "GR",
	"TUR": "TR", "MEX": "MX", "ARG": "AR", "CHL": "CL", "JPN": "JP",
	"KOR": "KR", "CHN": "CN", "IND": "IN", "ZAF": "ZA", "NZL": "NZ",
}

// Normalize trims trailing NULs from raw (the 3 ASCII bytes read off the
// wire) and resolves it to an uppercase alpha-2 code, or Unknown. Any
// two-letter alphabetic code is accepted as-is: the alpha-2 space has
// ~249 real entries and country-code normalization tables are an
// explicit external-collaborator concern (spec §1), so this package
// only maps the legacy 3-letter codes it actually knows, rather than
// gating already-valid 2-letter input through a closed allowlist.
func Normalize(raw []byte) string {
	s := strings.TrimRight(string(raw), "\x00")
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	s = upper.String(s)

	switch len(s) {
	case 2:
		if isAlpha(s) {
			return s
		}
		return Unknown
	case 3:
		if a2, ok := legacyThreeLetter[s]; ok {
			return a2
		}
		return Unknown
	default:
		return Unknown
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
