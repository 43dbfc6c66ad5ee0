package jtruncate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastMatchEucJp(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{name: "empty", input: nil, want: 0},
		{name: "ascii", input: []byte("abc"), want: 1},
		{name: "jisx0208", input: []byte{0xa4, 0xa2}, want: 2},
		{name: "jisx0208 after ascii", input: []byte{0x41, 0xa4, 0xa2}, want: 2},
		{name: "halfwidth katakana", input: []byte{0x8e, 0xb1}, want: 2},
		{name: "jisx0212 beats jisx0208", input: []byte{0x8f, 0xa1, 0xa1}, want: 3},
		{name: "lone lead byte", input: []byte{0x8e}, want: 0},
		{name: "stray high byte", input: []byte{0x41, 0x80}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lastMatch(eucPatterns, tc.input))
		})
	}
}

func TestLastMatchShiftJis(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{name: "empty", input: nil, want: 0},
		{name: "ascii", input: []byte("abc"), want: 1},
		{name: "two-byte", input: []byte{0x93, 0xfa}, want: 2},
		{name: "two-byte beats katakana trail", input: []byte{0x81, 0xa1}, want: 2},
		{name: "halfwidth katakana", input: []byte{0xb1}, want: 1},
		{name: "lone lead byte", input: []byte{0x93}, want: 0},
		{name: "control byte", input: []byte{0x1f}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lastMatch(sjisPatterns, tc.input))
		})
	}
}

func TestLastMatchJis(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{name: "empty", input: nil, want: 0},
		{name: "one-byte", input: []byte("a"), want: 1},
		{name: "two-byte after shift-in", input: []byte{0x1b, 0x24, 0x42, 0x21, 0x21}, want: 2},
		{name: "bare pair stays one-byte", input: []byte{0x21, 0x21}, want: 1},
		{name: "ascii after shift-out stays one-byte", input: []byte{0x1b, 0x24, 0x42, 0x21, 0x21, 0x1b, 0x28, 0x42, 'a', 'b'}, want: 1},
		{name: "jisx0208-1978 escape", input: []byte{0x1b, 0x24, 0x40}, want: 3},
		{name: "jisx0208-1983 escape", input: []byte{0x1b, 0x24, 0x42}, want: 3},
		{name: "jisx0208-1990 escape", input: []byte{0x1b, 0x26, 0x40, 0x1b, 0x24, 0x42}, want: 6},
		{name: "jisx0212 escape", input: []byte{0x1b, 0x24, 0x28, 0x44}, want: 4},
		{name: "roman escape", input: []byte{0x1b, 0x28, 0x4a}, want: 3},
		{name: "ascii escape", input: []byte{0x1b, 0x28, 0x42}, want: 3},
		{name: "shift katakana run", input: []byte{0x41, 0x0f, 0xb1, 0xb2, 0x0e}, want: 4},
		{name: "empty shift run", input: []byte{0x0f, 0x0e}, want: 2},
		{name: "control byte", input: []byte{0x1f}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lastMatch(jisPatterns, tc.input))
		})
	}
}

func TestInTwoByteMode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{name: "empty", input: nil, want: false},
		{name: "no escapes", input: []byte("abc"), want: false},
		{name: "two-byte escape alone", input: []byte{0x1b, 0x24, 0x42}, want: true},
		{name: "two-byte escape then characters", input: []byte{0x1b, 0x24, 0x42, 0x21, 0x21}, want: true},
		{name: "jisx0212 escape", input: []byte{0x1b, 0x24, 0x28, 0x44, 0x21, 0x21}, want: true},
		{name: "shifted back out", input: []byte{0x1b, 0x24, 0x42, 0x21, 0x21, 0x1b, 0x28, 0x42}, want: false},
		{name: "ascii after shift out", input: []byte{0x1b, 0x24, 0x42, 0x21, 0x21, 0x1b, 0x28, 0x42, 0x41, 0x42}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inTwoByteMode(tc.input))
		})
	}
}
