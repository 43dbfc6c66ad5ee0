package jtruncate

import "bytes"

// A charPattern describes one shape a complete trailing unit -- a character
// or an escape sequence -- can take in a given encoding. match reports how
// many bytes at the end of b the pattern covers, or 0 if the tail does not
// end with such a unit.
type charPattern struct {
	name  string
	match func(b []byte) int
}

func isEucByte(c byte) bool {
	return c >= 0xa1 && c <= 0xfe
}

func isEucKanaByte(c byte) bool {
	return c >= 0xa0 && c <= 0xdf
}

func isSjisLead(c byte) bool {
	return (c >= 0x81 && c <= 0x9f) || (c >= 0xe0 && c <= 0xef)
}

func isSjisTrail(c byte) bool {
	return (c >= 0x40 && c <= 0x7e) || (c >= 0x80 && c <= 0xfc)
}

func isSjisKana(c byte) bool {
	return c >= 0xa1 && c <= 0xdf
}

func isJisByte(c byte) bool {
	return c >= 0x21 && c <= 0x7e
}

var eucPatterns = []charPattern{
	{
		name: "ascii/jis-roman",
		match: func(b []byte) int {
			if n := len(b); n >= 1 && b[n-1] <= 0x7f {
				return 1
			}
			return 0
		},
	},
	{
		name: "jisx0208",
		match: func(b []byte) int {
			if n := len(b); n >= 2 && isEucByte(b[n-2]) && isEucByte(b[n-1]) {
				return 2
			}
			return 0
		},
	},
	{
		name: "halfwidth-katakana",
		match: func(b []byte) int {
			if n := len(b); n >= 2 && b[n-2] == 0x8e && isEucKanaByte(b[n-1]) {
				return 2
			}
			return 0
		},
	},
	{
		name: "jisx0212",
		match: func(b []byte) int {
			if n := len(b); n >= 3 && b[n-3] == 0x8f && isEucByte(b[n-2]) && isEucByte(b[n-1]) {
				return 3
			}
			return 0
		},
	},
}

var sjisPatterns = []charPattern{
	{
		name: "ascii/jis-roman",
		match: func(b []byte) int {
			if n := len(b); n >= 1 && isJisByte(b[n-1]) {
				return 1
			}
			return 0
		},
	},
	{
		name: "halfwidth-katakana",
		match: func(b []byte) int {
			if n := len(b); n >= 1 && isSjisKana(b[n-1]) {
				return 1
			}
			return 0
		},
	},
	{
		name: "two-byte",
		match: func(b []byte) int {
			if n := len(b); n >= 2 && isSjisLead(b[n-2]) && isSjisTrail(b[n-1]) {
				return 2
			}
			return 0
		},
	},
}

// Escape sequences that switch an ISO-2022-JP stream into two-byte mode,
// longest first.
var jisTwoByteEscapes = [][]byte{
	{0x1b, 0x26, 0x40, 0x1b, 0x24, 0x42},
	{0x1b, 0x24, 0x28, 0x44},
	{0x1b, 0x24, 0x40},
	{0x1b, 0x24, 0x42},
}

var jisPatterns = []charPattern{
	{
		name: "two-byte-mode-escape",
		match: func(b []byte) int {
			for _, esc := range jisTwoByteEscapes {
				if bytes.HasSuffix(b, esc) {
					return len(esc)
				}
			}
			return 0
		},
	},
	{
		// The byte ranges of one-byte and two-byte characters overlap, so
		// both rules check the shift state in effect where the candidate
		// starts; a bare range check would happily pair the final byte of
		// a shift-out escape with the ascii byte that follows it.
		name: "two-byte",
		match: func(b []byte) int {
			n := len(b)
			if n >= 2 && isJisByte(b[n-2]) && isJisByte(b[n-1]) && inTwoByteMode(b[:n-2]) {
				return 2
			}
			return 0
		},
	},
	{
		name: "one-byte-mode-escape",
		match: func(b []byte) int {
			n := len(b)
			if n < 3 || b[n-3] != 0x1b || b[n-2] != 0x28 {
				return 0
			}
			switch b[n-1] {
			case 0x4a, 0x48, 0x42, 0x49:
				return 3
			}
			return 0
		},
	},
	{
		name: "one-byte",
		match: func(b []byte) int {
			n := len(b)
			if n >= 1 && isJisByte(b[n-1]) && !inTwoByteMode(b[:n-1]) {
				return 1
			}
			return 0
		},
	},
	{
		// a run of half-width katakana bracketed by shift controls
		name: "shift-katakana",
		match: func(b []byte) int {
			n := len(b)
			if n < 2 || b[n-1] != 0x0e {
				return 0
			}
			i := n - 2
			for i >= 0 && isSjisKana(b[i]) {
				i--
			}
			if i >= 0 && b[i] == 0x0f {
				return n - i
			}
			return 0
		},
	},
}

// lastMatch reports the length of the longest trailing unit of b matched
// by any of the patterns. Alternation is resolved by span length alone;
// ties between rules of equal length are not significant.
func lastMatch(patterns []charPattern, b []byte) int {
	longest := 0
	for _, p := range patterns {
		if n := p.match(b); n > longest {
			longest = n
		}
	}
	return longest
}

// inTwoByteMode reports whether an ISO-2022-JP buffer, read to its end,
// is left in two-byte shift mode. The deciding factor is the last mode
// escape present in the buffer; a buffer with no escapes is in the
// initial single-byte mode.
func inTwoByteMode(b []byte) bool {
	for i := len(b) - 2; i >= 0; i-- {
		if b[i] != 0x1b {
			continue
		}
		switch b[i+1] {
		case 0x24:
			return true
		case 0x28:
			return false
		}
	}
	return false
}
