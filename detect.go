package jtruncate

import (
	"github.com/lestrrat-go/pdebug/v3"
)

// DetectEncoding is the default Detector. It implements the classic
// getcode heuristic: ISO-2022 escape sequences mean jis, a pure 7-bit
// buffer is ascii, and otherwise the high-byte runs are scored against
// the EUC-JP and Shift-JIS sequence grammars with the better fit winning.
// A buffer that fits neither grammar is Unknown.
func DetectEncoding(b []byte) Encoding {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if hasJisEscape(b) {
		return Jis
	}

	high := false
	for _, c := range b {
		if c >= 0x80 {
			high = true
			break
		}
	}
	if !high {
		return Ascii
	}

	eucScore, eucOK := scanEuc(b)
	sjisScore, sjisOK := scanSjis(b)
	if pdebug.Enabled {
		pdebug.Printf("euc score %d (ok=%t), sjis score %d (ok=%t)", eucScore, eucOK, sjisScore, sjisOK)
	}

	switch {
	case eucOK && (!sjisOK || eucScore >= sjisScore):
		return EucJp
	case sjisOK:
		return ShiftJis
	}
	return Unknown
}

// hasJisEscape reports whether b contains an ISO-2022-JP mode escape.
func hasJisEscape(b []byte) bool {
	for i := 0; i+2 < len(b); i++ {
		if b[i] != 0x1b {
			continue
		}
		switch b[i+1] {
		case 0x24:
			switch b[i+2] {
			case 0x40, 0x42, 0x28:
				return true
			}
		case 0x28:
			switch b[i+2] {
			case 0x4a, 0x48, 0x42, 0x49:
				return true
			}
		case 0x26:
			if b[i+2] == 0x40 {
				return true
			}
		}
	}
	return false
}

// scanEuc walks b as EUC-JP, counting the bytes consumed by multi-byte
// sequences. ok is false as soon as a byte fits no EUC-JP sequence.
func scanEuc(b []byte) (score int, ok bool) {
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c <= 0x7f:
			i++
		case c == 0x8e && i+1 < len(b) && isEucKanaByte(b[i+1]):
			i += 2
			score += 2
		case c == 0x8f && i+2 < len(b) && isEucByte(b[i+1]) && isEucByte(b[i+2]):
			i += 3
			score += 3
		case isEucByte(c) && i+1 < len(b) && isEucByte(b[i+1]):
			i += 2
			score += 2
		default:
			return score, false
		}
	}
	return score, true
}

// scanSjis walks b as Shift-JIS, counting the bytes consumed by katakana
// and two-byte sequences. ok is false as soon as a byte fits neither.
func scanSjis(b []byte) (score int, ok bool) {
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c <= 0x7f:
			i++
		case isSjisLead(c) && i+1 < len(b) && isSjisTrail(b[i+1]):
			i += 2
			score += 2
		case isSjisKana(c):
			i++
			score++
		default:
			return score, false
		}
	}
	return score, true
}
