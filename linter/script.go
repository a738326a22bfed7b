package linter

import "unicode"

// Script is the writing system of a character, as far as spacing and
// hyphenation are concerned.
type Script uint8

// Scripts distinguished by the linter. The zero value is Unknown.
const (
	Unknown Script = iota
	Numbers
	Western
	Chinese
)

func (s Script) String() string {
	switch s {
	case Numbers:
		return "Numbers"
	case Western:
		return "Western"
	case Chinese:
		return "Chinese"
	}
	return "Unknown"
}

var western = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0041, Hi: 0x005a, Stride: 1},
		{Lo: 0x0061, Hi: 0x007a, Stride: 1},
		{Lo: 0x00c0, Hi: 0x00d6, Stride: 1},
		{Lo: 0x00d8, Hi: 0x00f6, Stride: 1},
		{Lo: 0x00f8, Hi: 0x024f, Stride: 1},
		{Lo: 0x0300, Hi: 0x036f, Stride: 1}, // combining diacritical marks
		{Lo: 0x1e00, Hi: 0x1eff, Stride: 1},
	},
	LatinOffset: 4,
}

var chinese = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2a6df, Stride: 1},
		{Lo: 0x2b740, Hi: 0x2b81f, Stride: 1},
		{Lo: 0x2b820, Hi: 0x2ceaf, Stride: 1},
		{Lo: 0x2ceb0, Hi: 0x2ebe0, Stride: 1},
		{Lo: 0x2f800, Hi: 0x2fa1f, Stride: 1},
	},
}

// ScriptOf classifies a single rune. It is total: runes outside the known
// ranges are Unknown.
func ScriptOf(r rune) Script {
	switch {
	case r >= '0' && r <= '9':
		return Numbers
	case r < 0x80:
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return Western
		}
		return Unknown
	case unicode.Is(western, r):
		return Western
	case unicode.Is(chinese, r):
		return Chinese
	}
	return Unknown
}

// NeedsSpace reports whether a thin space separates text of script from from
// following text of script to.
func NeedsSpace(from, to Script) bool {
	if from == to {
		return false
	}
	return from == Chinese && to != Unknown || to == Chinese && from != Unknown
}
