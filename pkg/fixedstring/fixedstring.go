// Package fixedstring implements the fixed-width, NUL-terminated ASCII
// string encoding used throughout the codeplug (names, intro lines, the
// boot password).
package fixedstring

import "strings"

// Decode reads an ASCII string out of a width-W field: it stops at the
// first NUL byte (or the end of the field), and drops any byte that isn't
// printable ASCII (0x20-0x7E).
func Decode(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0x00 {
			break
		}
		if c >= 0x20 && c <= 0x7E {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Encode writes s into b, truncating to len(b) bytes, NUL-terminating if
// room remains after the truncated text, and NUL-padding the remainder.
func Encode(b []byte, s string) {
	for i := range b {
		b[i] = 0x00
	}
	n := copy(b, s)
	_ = n // NUL-termination and padding already hold: b was zeroed above.
}

// MaxLen returns the longest string that fits, unterminated, in width bytes.
func MaxLen(width int) int {
	return width
}
