package jtruncate

import "errors"

var (
	ErrInvalidLength = errors.New("invalid length")
)

// Encoding identifies the character encoding of a byte buffer as reported
// by a Detector. Only EucJp, ShiftJis and Jis get character-boundary-aware
// treatment; everything else is truncated with a plain byte cut.
type Encoding int

const (
	Unknown Encoding = iota
	Ascii
	EucJp
	ShiftJis
	Jis
)

// Detector is the encoding detection collaborator a Truncator consults
// before selecting a pattern table. Implementations must not retain or
// mutate the buffer they are given.
type Detector interface {
	Detect([]byte) Encoding
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func([]byte) Encoding

func (f DetectorFunc) Detect(b []byte) Encoding {
	return f(b)
}

// Truncator trims byte buffers down to a byte budget without splitting a
// multi-byte character or leaving an ISO-2022-JP buffer in two-byte
// shift mode. The zero value is not usable; use New.
type Truncator struct {
	detector Detector
}

func (e Encoding) String() string {
	switch e {
	case Ascii:
		return "ascii"
	case EucJp:
		return "euc"
	case ShiftJis:
		return "sjis"
	case Jis:
		return "jis"
	}
	return "unknown"
}

// LookupEncoding maps a conventional encoding tag to an Encoding value.
// It accepts the tags produced by Encoding.String as well as the common
// long-form names.
func LookupEncoding(name string) (Encoding, bool) {
	switch name {
	case "ascii", "us-ascii":
		return Ascii, true
	case "euc", "euc-jp", "eucjp":
		return EucJp, true
	case "sjis", "shift_jis", "shift-jis", "shiftjis":
		return ShiftJis, true
	case "jis", "iso-2022-jp":
		return Jis, true
	}
	return Unknown, false
}
