package jtruncate

import "github.com/saintfish/chardet"

// NewChardetDetector returns a Detector backed by the saintfish/chardet
// text detector. It is a drop-in alternative to the built-in getcode
// heuristic for callers whose input is mostly non-Japanese and who want
// the broader charset coverage chardet provides.
func NewChardetDetector() Detector {
	return &chardetDetector{detector: chardet.NewTextDetector()}
}

type chardetDetector struct {
	detector *chardet.Detector
}

func (d *chardetDetector) Detect(b []byte) Encoding {
	result, err := d.detector.DetectBest(b)
	if err != nil {
		return Unknown
	}
	return encodingFromCharset(result.Charset)
}

// encodingFromCharset maps chardet charset names onto Encoding tags.
// Everything outside the three Japanese charsets is reported as Unknown;
// the truncator cuts those at the byte offset regardless.
func encodingFromCharset(name string) Encoding {
	switch name {
	case "ISO-2022-JP":
		return Jis
	case "EUC-JP":
		return EucJp
	case "Shift_JIS":
		return ShiftJis
	}
	return Unknown
}
