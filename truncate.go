package jtruncate

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/pdebug/v3"
)

// The ISO-2022-JP fixup may need to append this escape after trimming, so
// the working target length is reduced by its size up front.
var jisSingleByteEscape = []byte{0x1b, 0x28, 0x42}

var defaultTruncator = New()

// Truncate trims text to at most length bytes using the default Truncator.
// See (*Truncator).Truncate for the exact semantics.
func Truncate(ctx context.Context, text []byte, length int) ([]byte, error) {
	return defaultTruncator.Truncate(ctx, text, length)
}

func New() *Truncator {
	return &Truncator{
		detector: DetectorFunc(DetectEncoding),
	}
}

// SetDetector replaces the encoding detector consulted by t. Passing a
// detector that always reports a fixed Encoding bypasses detection
// entirely.
func (t *Truncator) SetDetector(d Detector) {
	t.detector = d
}

// Truncate trims text to at most length bytes. For buffers detected as
// EUC-JP, Shift-JIS or ISO-2022-JP whole trailing characters are removed
// until the buffer fits, so the result never ends in the middle of a
// multi-byte character. Anything else is cut at the byte offset.
//
// An ISO-2022-JP result that would otherwise end in two-byte shift mode
// gets the single-byte-mode escape appended; the 3 bytes this may add are
// reserved before trimming, so the result still fits in length.
//
// A buffer whose tail stops matching the detected encoding's patterns
// mid-trim is cut at the byte offset instead; that fallback may split a
// character but guarantees termination on malformed input.
func (t *Truncator) Truncate(ctx context.Context, text []byte, length int) ([]byte, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	switch {
	case length < 0:
		return nil, ErrInvalidLength
	case length == 0:
		return []byte{}, nil
	case len(text) <= length:
		return text, nil
	}

	enc := t.detector.Detect(text)

	tlog := getTraceLogFromContext(ctx)
	tlog.Info("detected encoding",
		slog.String("encoding", enc.String()),
		slog.Int("input_length", len(text)),
		slog.Int("length", length),
	)

	var patterns []charPattern
	switch enc {
	case EucJp:
		patterns = eucPatterns
	case ShiftJis:
		patterns = sjisPatterns
	case Jis:
		patterns = jisPatterns
	default:
		// not Japanese text as far as the detector can tell
		return text[:length], nil
	}

	working := length
	if enc == Jis {
		working -= len(jisSingleByteEscape)
	}

	buf := text
	for len(buf) > working {
		n := lastMatch(patterns, buf)
		if n == 0 {
			if pdebug.Enabled {
				pdebug.Printf("no trailing %s unit at %d bytes, giving up", enc, len(buf))
			}
			tlog.Info("tail does not match detected encoding, falling back to byte cut",
				slog.String("encoding", enc.String()),
				slog.Int("remaining", len(buf)),
			)
			return text[:length], nil
		}
		buf = buf[:len(buf)-n]
	}

	if enc == Jis && inTwoByteMode(buf) {
		out := make([]byte, len(buf), len(buf)+len(jisSingleByteEscape))
		copy(out, buf)
		return append(out, jisSingleByteEscape...), nil
	}

	return buf, nil
}
