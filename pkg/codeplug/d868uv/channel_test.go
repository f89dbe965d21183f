package d868uv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
)

func sampleContactIdx(ci codeplug.ContactIndex) uint32 {
	return index32(int(ci), NoContactRaw)
}

func sampleContactOf(raw uint32) codeplug.ContactIndex {
	return codeplug.ContactIndex(signedIndex32(raw, NoContactRaw))
}

// TestChannelRecordMatchesS1 checks the byte-exact channel_t layout against
// spec.md's worked example S1: a digital, low-power, 12.5 kHz repeater
// channel with a negative TX offset, color code 1, timeslot 2.
func TestChannelRecordMatchesS1(t *testing.T) {
	ch := codeplug.Channel{
		Name:          "CH1",
		RxFrequencyHz: 439000000,
		TxOffsetHz:    -7600000,
		Mode:          codeplug.ModeDigital,
		Power:         codeplug.PowerLow,
		Bandwidth:     codeplug.Bandwidth12_5kHz,
		ColorCode:     1,
		Timeslot:      codeplug.Timeslot2,
		Contact:       0,
		RadioID:       codeplug.NoRadioID,
		ScanList:      codeplug.NoScanList,
		GroupList:     0,
		GpsSystem:     codeplug.NoGpsSystem,
	}

	rec, err := encodeChannelRecord(ch, sampleContactIdx)
	require.NoError(t, err)
	require.Len(t, rec, channelRecordSize)

	assert.Equal(t, []byte{0x43, 0x90, 0x00, 0x00}, rec[0x00:0x04], "RX frequency BCD (10 Hz units)")
	assert.Equal(t, []byte{0x07, 0x60, 0x00, 0x00}, rec[0x04:0x08], "TX offset BCD magnitude (raw Hz, no quantum)")
	assert.Equal(t, byte(0b0000_0101), rec[0x08], "byte 8: digital, low power, 12.5 kHz, repeater negative")
	assert.Equal(t, byte(0x01), rec[0x20], "byte 32: color code")
	assert.Equal(t, byte(1), rec[0x21]&0x01, "byte 33 bit 0: timeslot 2")
	assert.Equal(t, uint32(0), getUint32LE(rec, 0x14), "contact_index points at contact 0")

	got := decodeChannelRecord(rec, sampleContactOf)
	assert.Equal(t, ch.Name, got.Name)
	assert.Equal(t, ch.RxFrequencyHz, got.RxFrequencyHz)
	assert.Equal(t, ch.TxOffsetHz, got.TxOffsetHz)
	assert.Equal(t, ch.Mode, got.Mode)
	assert.Equal(t, ch.Power, got.Power)
	assert.Equal(t, ch.Bandwidth, got.Bandwidth)
	assert.Equal(t, ch.ColorCode, got.ColorCode)
	assert.Equal(t, ch.Timeslot, got.Timeslot)
	assert.Equal(t, ch.Contact, got.Contact)
}

func TestChannelRecordRoundTrip(t *testing.T) {
	ch := codeplug.Channel{
		Name:          "REPEATER1",
		RxFrequencyHz: 439500000,
		TxOffsetHz:    -7600000,
		Mode:          codeplug.ModeDigital,
		Power:         codeplug.PowerHigh,
		Bandwidth:     codeplug.Bandwidth12_5kHz,
		RxTone:        codeplug.Tone{Kind: codeplug.ToneNone},
		TxTone:        codeplug.Tone{Kind: codeplug.ToneCTCSS, CTCSSTenthsHz: 1000},
		ColorCode:     1,
		Timeslot:      codeplug.Timeslot2,
		Contact:       5,
		RadioID:       codeplug.NoRadioID,
		ScanList:      codeplug.NoScanList,
		GroupList:     codeplug.NoGroupList,
		GpsSystem:     codeplug.NoGpsSystem,
		RxOnly:        true,
	}

	rec, err := encodeChannelRecord(ch, sampleContactIdx)
	require.NoError(t, err)
	require.Len(t, rec, channelRecordSize)

	got := decodeChannelRecord(rec, sampleContactOf)
	assert.Equal(t, ch.Name, got.Name)
	assert.Equal(t, ch.RxFrequencyHz, got.RxFrequencyHz)
	assert.Equal(t, ch.TxOffsetHz, got.TxOffsetHz)
	assert.Equal(t, ch.Mode, got.Mode)
	assert.Equal(t, ch.Power, got.Power)
	assert.Equal(t, ch.TxTone, got.TxTone)
	assert.Equal(t, ch.ColorCode, got.ColorCode)
	assert.Equal(t, ch.Timeslot, got.Timeslot)
	assert.Equal(t, ch.Contact, got.Contact)
	assert.True(t, got.RxOnly)
}

func TestChannelRecordPositiveOffsetSign(t *testing.T) {
	ch := codeplug.Channel{
		RxFrequencyHz: 146520000,
		TxOffsetHz:    600000,
		Contact:       codeplug.NoContact,
		RadioID:       codeplug.NoRadioID,
		ScanList:      codeplug.NoScanList,
		GroupList:     codeplug.NoGroupList,
		GpsSystem:     codeplug.NoGpsSystem,
	}
	rec, err := encodeChannelRecord(ch, sampleContactIdx)
	require.NoError(t, err)
	got := decodeChannelRecord(rec, sampleContactOf)
	assert.Equal(t, int32(600000), got.TxOffsetHz)
	assert.False(t, getBit(rec, chOffFlags8, 2))
}

func TestChannelRecordRejectsFrequencyOutOfBCDRange(t *testing.T) {
	ch := codeplug.Channel{RxFrequencyHz: 1_000_000_000, Contact: codeplug.NoContact}
	_, err := encodeChannelRecord(ch, sampleContactIdx)
	assert.Error(t, err)
}

func TestChannelRecordDCSTone(t *testing.T) {
	ch := codeplug.Channel{
		RxFrequencyHz: 146520000,
		Contact:       codeplug.NoContact,
		RadioID:       codeplug.NoRadioID,
		ScanList:      codeplug.NoScanList,
		GroupList:     codeplug.NoGroupList,
		GpsSystem:     codeplug.NoGpsSystem,
		RxTone:        codeplug.Tone{Kind: codeplug.ToneDCS, DCSCode: 0o777, DCSInverted: true},
	}
	rec, err := encodeChannelRecord(ch, sampleContactIdx)
	require.NoError(t, err)
	assert.True(t, getBit(rec, chOffFlags9, 1), "rx_dcs enable bit")
	assert.False(t, getBit(rec, chOffFlags9, 0), "rx_ctcss enable bit must stay clear")

	got := decodeChannelRecord(rec, sampleContactOf)
	assert.Equal(t, ch.RxTone, got.RxTone)
}
