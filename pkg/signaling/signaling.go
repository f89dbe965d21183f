// Package signaling implements the CTCSS and DCS sub-audible squelch
// tone/code tables the channel codec uses for its TX/RX signalling fields.
package signaling

import "fmt"

// CTCSSCustom is the index value that means "use the custom CTCSS
// frequency field" rather than a table entry.
const CTCSSCustom = 51

// ctcssTable holds the 51 standard CTCSS tones in tenths of a hertz,
// index 0 is the radio's extra 62.5 Hz tone, indices 1-50 are the classic
// 50-tone CTCSS set ending at 254.1 Hz.
var ctcssTable = [51]uint16{
	625,
	670, 693, 719, 744, 770, 797, 825, 854, 885, 915,
	948, 974, 1000, 1035, 1072, 1109, 1148, 1188, 1230, 1273,
	1318, 1365, 1413, 1462, 1514, 1567, 1598, 1622, 1655, 1679,
	1713, 1738, 1773, 1799, 1835, 1862, 1899, 1928, 1966, 1995,
	2035, 2065, 2107, 2181, 2257, 2291, 2336, 2418, 2503, 2541,
}

// CTCSSIndexToTenthsHz returns the tone frequency, in tenths of a hertz,
// for a standard table index (0-50). It returns an error for CTCSSCustom
// or any out-of-range index; the caller should check for CTCSSCustom first.
func CTCSSIndexToTenthsHz(index uint8) (uint16, error) {
	if int(index) >= len(ctcssTable) {
		return 0, fmt.Errorf("signaling: CTCSS index %d out of range", index)
	}
	return ctcssTable[index], nil
}

// CTCSSTenthsHzToIndex finds the table index for a standard tone frequency
// (in tenths of a hertz). ok is false if the frequency isn't in the table,
// meaning the caller should fall back to CTCSSCustom plus a custom
// frequency field.
func CTCSSTenthsHzToIndex(tenthsHz uint16) (index uint8, ok bool) {
	for i, v := range ctcssTable {
		if v == tenthsHz {
			return uint8(i), true
		}
	}
	return 0, false
}

// DCS code/polarity packing: bits 0-8 hold the octal code value (0-511),
// bit 9 distinguishes inverted from normal polarity.
const dcsInvertedBit = 1 << 9

// DCSCode is a DCS code plus its polarity.
type DCSCode struct {
	Code     uint16 // octal code value, 0-511 (i.e. 0-0777 octal)
	Inverted bool
}

// DecodeDCS unpacks a raw 16-bit DCS field (as stored little-endian in the
// channel record) into its code and polarity.
func DecodeDCS(raw uint16) DCSCode {
	return DCSCode{
		Code:     raw &^ dcsInvertedBit,
		Inverted: raw&dcsInvertedBit != 0,
	}
}

// EncodeDCS packs a DCS code and polarity back into the raw field.
func EncodeDCS(c DCSCode) uint16 {
	raw := c.Code & (dcsInvertedBit - 1)
	if c.Inverted {
		raw |= dcsInvertedBit
	}
	return raw
}

// MaxDCSCode is the highest representable DCS code value, D777 in the
// radio's octal notation.
const MaxDCSCode = 511 // D777N/D777I in the radio's own octal naming

// DCSOctalString renders a code in the radio's "DdddN"/"DdddI" notation.
func (c DCSCode) DCSOctalString() string {
	suffix := "N"
	if c.Inverted {
		suffix = "I"
	}
	return fmt.Sprintf("D%03o%s", c.Code, suffix)
}
