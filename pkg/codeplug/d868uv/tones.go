package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/signaling"
)

// A channel's RX/TX tone is not a single raw field on real hardware: an
// enable bit in byte 9 of channel_t (rx_ctcss/rx_dcs/tx_ctcss/tx_dcs)
// selects CTCSS or DCS (or neither), and the selected scheme's value lives
// in its own byte (CTCSS table index, 0-50, or signaling.CTCSSCustom for a
// custom frequency carried in the record's shared custom_ctcss field) or
// its own 16-bit little-endian field (DCS, signaling.EncodeDCS's 10-bit
// result with bit 9 as the inverted-polarity flag).
//
// encodeToneField/decodeToneField handle one direction at a time; the
// caller passes that direction's enable-bit positions within byte 9 and
// the offsets of its ctcss-index/dcs-code fields.

// encodeToneField writes t's enable bit and index/code field, reporting
// whether t needs the record's shared custom-CTCSS frequency field.
func encodeToneField(b []byte, ctcssOff, dcsOff, enableOff int, ctcssBit, dcsBit uint, t codeplug.Tone) (usesCustom bool) {
	switch t.Kind {
	case codeplug.ToneCTCSS:
		setBit(b, enableOff, ctcssBit, true)
		if idx, ok := signaling.CTCSSTenthsHzToIndex(t.CTCSSTenthsHz); ok {
			b[ctcssOff] = idx
			return false
		}
		b[ctcssOff] = signaling.CTCSSCustom
		return true
	case codeplug.ToneDCS:
		setBit(b, enableOff, dcsBit, true)
		putUint16LE(b, dcsOff, signaling.EncodeDCS(signaling.DCSCode{Code: t.DCSCode, Inverted: t.DCSInverted}))
		return false
	default:
		return false
	}
}

func decodeToneField(b []byte, ctcssOff, dcsOff, enableOff int, ctcssBit, dcsBit uint, customTenthsHz uint16) codeplug.Tone {
	switch {
	case getBit(b, enableOff, ctcssBit):
		idx := b[ctcssOff]
		if idx == signaling.CTCSSCustom {
			return codeplug.Tone{Kind: codeplug.ToneCTCSS, CTCSSTenthsHz: customTenthsHz}
		}
		hz, err := signaling.CTCSSIndexToTenthsHz(idx)
		if err != nil {
			return codeplug.Tone{Kind: codeplug.ToneNone}
		}
		return codeplug.Tone{Kind: codeplug.ToneCTCSS, CTCSSTenthsHz: hz}
	case getBit(b, enableOff, dcsBit):
		dcs := signaling.DecodeDCS(getUint16LE(b, dcsOff))
		return codeplug.Tone{Kind: codeplug.ToneDCS, DCSCode: dcs.Code, DCSInverted: dcs.Inverted}
	default:
		return codeplug.Tone{Kind: codeplug.ToneNone}
	}
}
