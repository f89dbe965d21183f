package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// general_settings_base_t (0xD0 bytes) holds the fields this codec
// understands at the front, with a large trailing region of undocumented
// bytes (spec.md §9 open question 1): those are preserved verbatim by
// round-tripping through Settings.RawGeneral rather than being
// reconstructed from modelled fields.
const (
	gsOffIntro1 = 0x00
	gsOffIntro2 = 0x0E
	gsOffMic    = 0x1C
	gsOffSquelch = 0x1D
	gsOffVox    = 0x1E
	gsOffTOT    = 0x1F
	gsOffFlags  = 0x20
)

// boot_settings_t (0x30 bytes): boot password up to 8 digits, the rest
// unused.
const bootOffPassword = 0x00

func encodeGeneralSettingsRecord(s codeplug.Settings) []byte {
	b := make([]byte, generalSettingsSize)
	if len(s.RawGeneral) == generalSettingsSize {
		copy(b, s.RawGeneral)
	}
	fixedstring.Encode(b[gsOffIntro1:gsOffIntro1+IntroLineWidth], s.IntroLine1)
	fixedstring.Encode(b[gsOffIntro2:gsOffIntro2+IntroLineWidth], s.IntroLine2)
	b[gsOffMic] = s.MicLevel
	b[gsOffSquelch] = s.Squelch
	b[gsOffVox] = s.VOX
	b[gsOffTOT] = s.TOT
	setBits(b, gsOffFlags, 0, 2, uint8(s.DefaultPower))
	setBit(b, gsOffFlags, 2, s.Speech)
	return b
}

func decodeGeneralSettingsRecord(b []byte) codeplug.Settings {
	s := codeplug.Settings{
		IntroLine1:   fixedstring.Decode(b[gsOffIntro1 : gsOffIntro1+IntroLineWidth]),
		IntroLine2:   fixedstring.Decode(b[gsOffIntro2 : gsOffIntro2+IntroLineWidth]),
		MicLevel:     b[gsOffMic],
		Squelch:      b[gsOffSquelch],
		VOX:          b[gsOffVox],
		TOT:          b[gsOffTOT],
		DefaultPower: codeplug.Power(getBits(b, gsOffFlags, 0, 2)),
		Speech:       getBit(b, gsOffFlags, 2),
	}
	s.RawGeneral = append([]byte(nil), b...)
	return s
}

func encodeBootSettingsRecord(s codeplug.Settings) []byte {
	b := make([]byte, bootSettingsSize)
	fixedstring.Encode(b[bootOffPassword:bootOffPassword+BootPasswordWidth], s.BootPassword)
	return b
}

func decodeBootPassword(b []byte) string {
	return fixedstring.Decode(b[bootOffPassword : bootOffPassword+BootPasswordWidth])
}
