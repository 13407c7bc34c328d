// Package scan implements the file-scanning and tokenization pipeline that
// powers the term clouds: tree walking with exclusion rules, defensive
// content loading with binary detection, per-mode tokenization, and
// frequency aggregation.
package scan

import "strings"

// Mode selects the tokenization strategy and file eligibility for a scan.
type Mode string

const (
	// ModeWords counts raw words from any text file
	ModeWords Mode = "words"
	// ModeCode counts decomposed code identifier pieces
	ModeCode Mode = "code"
	// ModeSymbols counts top-level definition names found by line heuristics
	ModeSymbols Mode = "symbols"
)

// ParseMode maps a request string to a Mode. Unrecognized or empty input
// silently falls back to ModeWords; an invalid mode is not an error.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCode:
		return ModeCode
	case ModeSymbols:
		return ModeSymbols
	default:
		return ModeWords
	}
}

// String returns the wire name of the mode.
func (m Mode) String() string {
	return string(m)
}
