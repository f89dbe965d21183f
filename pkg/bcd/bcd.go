// Package bcd implements the big-endian and little-endian binary-coded
// decimal codecs the radio uses for frequencies and numeric IDs.
package bcd

import "fmt"

// MaxDigits is the largest digit count this package will encode into a
// single byte slice (16 bytes, two digits per byte).
const MaxDigits = 32

// DecodeBE reads a big-endian BCD value from b, high nibble of the first
// byte is the most significant digit.
func DecodeBE(b []byte) uint64 {
	var v uint64
	for _, by := range b {
		v = v*100 + uint64(by>>4)*10 + uint64(by&0x0F)
	}
	return v
}

// EncodeBE writes value into len(b) bytes of big-endian BCD, clamping to the
// representable range and preserving leading zeros.
func EncodeBE(b []byte, value uint64) {
	max := pow10(uint(len(b)) * 2)
	if value >= max {
		value = max - 1
	}
	for i := len(b) - 1; i >= 0; i-- {
		lo := value % 10
		value /= 10
		hi := value % 10
		value /= 10
		b[i] = byte(hi<<4 | lo)
	}
}

// DecodeLE reads a little-endian BCD value: the byte order is reversed
// relative to DecodeBE before the same big-endian-per-byte nibble decode is
// applied. Used by the radio-ID field.
func DecodeLE(b []byte) uint64 {
	rev := make([]byte, len(b))
	for i, by := range b {
		rev[len(b)-1-i] = by
	}
	return DecodeBE(rev)
}

// EncodeLE writes value into len(b) bytes of little-endian BCD.
func EncodeLE(b []byte, value uint64) {
	tmp := make([]byte, len(b))
	EncodeBE(tmp, value)
	for i, by := range tmp {
		b[len(b)-1-i] = by
	}
}

// Validate reports whether b holds only valid BCD nibbles (0-9 in each
// nibble); decode of radio-supplied images uses this to flag CorruptImage.
func Validate(b []byte) error {
	for _, by := range b {
		if by>>4 > 9 || by&0x0F > 9 {
			return fmt.Errorf("bcd: invalid nibble in byte 0x%02X", by)
		}
	}
	return nil
}

func pow10(n uint) uint64 {
	v := uint64(1)
	for i := uint(0); i < n; i++ {
		v *= 10
	}
	return v
}
