// Package jtruncate truncates byte buffers encoded in the legacy Japanese
// text encodings -- EUC-JP, Shift-JIS and ISO-2022-JP -- to at most a
// given byte length without splitting a multi-byte character, and without
// leaving an ISO-2022-JP buffer in an invalid shift state.
//
// The simplest entry point is the package-level function:
//
//	out, err := jtruncate.Truncate(ctx, text, 100)
//
// which detects the encoding with the built-in getcode heuristic and then
// removes whole trailing characters until the buffer fits. Buffers that
// are not Japanese text (ASCII, UTF-8, binary) are cut at the byte
// offset.
//
// Detection is pluggable. A Truncator consults a Detector, so callers can
// substitute their own:
//
//	tr := jtruncate.New()
//	tr.SetDetector(jtruncate.NewChardetDetector())
//	out, err := tr.Truncate(ctx, text, 100)
//
// ISO-2022-JP needs special care: truncation may leave the buffer in
// two-byte shift mode, which is fixed up by appending the single-byte
// escape (ESC ( B). Three bytes of headroom are reserved before trimming
// so the fixup never pushes the result over the requested length.
//
// The package performs no transcoding and no validation; input that stops
// matching the detected encoding mid-trim is cut at the byte offset as a
// termination safeguard.
package jtruncate
