package d868uv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// This file holds the absolute-byte/scenario tests spec.md's worked examples
// (S1-S6) call for: they check the encoded image against the firmware's own
// addresses and layouts, not just that encode and decode agree with each
// other.

// TestS1FullImageLayout builds spec.md S1's single-channel, single-contact
// codeplug and reads the image back at the literal firmware addresses.
func TestS1FullImageLayout(t *testing.T) {
	cfg := &codeplug.Config{
		RadioName: "N0CALL",
		Contacts: []codeplug.Contact{
			{CallType: codeplug.CallGroup, ID: 1, Name: "TG1"},
		},
		Channels: []codeplug.Channel{
			{
				Name: "CH1", RxFrequencyHz: 439000000, TxOffsetHz: -7600000,
				Mode: codeplug.ModeDigital, Power: codeplug.PowerLow,
				Bandwidth: codeplug.Bandwidth12_5kHz,
				ColorCode: 1, Timeslot: codeplug.Timeslot2,
				Contact: 0, RadioID: codeplug.NoRadioID,
				ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList,
				GpsSystem: codeplug.NoGpsSystem,
			},
		},
	}

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	rec, err := img.Read(addrChannelBankBase, channelRecordSize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x43, 0x90, 0x00, 0x00}, rec[0x00:0x04], "RX frequency BCD at 0x00800000")
	assert.Equal(t, []byte{0x07, 0x60, 0x00, 0x00}, rec[0x04:0x08], "TX offset BCD at 0x00800004")
	assert.Equal(t, byte(0b0000_0101), rec[0x08], "byte 8 flags at 0x00800008")
	assert.Equal(t, byte(0x01), rec[0x20], "color code at 0x00800020")
	assert.Equal(t, byte(1), rec[0x21]&0x01, "timeslot bit at 0x00800021")

	chMask, err := readMask(img, channelMaskSpec)
	require.NoError(t, err)
	assert.True(t, chMask.Test(0), "channel bitmap bit 0 set")

	contactMask, err := readMask(img, contactMaskSpec)
	require.NoError(t, err)
	assert.True(t, contactMask.Test(0), "contact bitmap bit 0 (inverted flavor) present")

	mapEntry, err := img.Read(addrContactMapBase, contactMapEntrySize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00}, mapEntry[0:4], "DMR-ID map key at 0x04340000")
	assert.Equal(t, uint32(0), getUint32LE(mapEntry, 4), "DMR-ID map entry points at contact 0")
}

// TestS2EmptyConfigMasks checks that an empty config leaves every positive
// mask region all-zero and the contact (inverted) mask all-0xFF, with no
// channel/contact record banks allocated.
func TestS2EmptyConfigMasks(t *testing.T) {
	cfg := &codeplug.Config{RadioName: "EMPTY"}

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	chMaskBytes, err := img.Read(addrChannelBitmap, maskByteLen(channelMaskSpec))
	require.NoError(t, err)
	for _, b := range chMaskBytes {
		assert.Equal(t, byte(0x00), b, "positive channel mask starts all-absent")
	}

	contactMaskBytes, err := img.Read(addrContactBitmap, maskByteLen(contactMaskSpec))
	require.NoError(t, err)
	for _, b := range contactMaskBytes {
		assert.Equal(t, byte(0xFF), b, "inverted contact mask starts all-absent")
	}

	assert.False(t, img.IsAllocated(addrChannelBankBase, channelRecordSize), "no channel record bank allocated")
	assert.False(t, img.IsAllocated(addrContactBankBase, contactRecordSize), "no contact record bank allocated")

	got, diags, err := Decode(img, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Empty(t, got.Channels)
	assert.Empty(t, got.Contacts)
}

// TestS3ZoneLayout checks spec.md S3's zone byte layout: name bytes, channel
// list bytes, and the zone presence bit.
func TestS3ZoneLayout(t *testing.T) {
	cfg := &codeplug.Config{
		RadioName: "N0CALL",
		Channels: []codeplug.Channel{
			{Name: "CH1", RxFrequencyHz: 146520000, Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID, ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
			{Name: "CH2", RxFrequencyHz: 146540000, Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID, ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
			{Name: "CH3", RxFrequencyHz: 146560000, Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID, ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
		},
		Zones: []codeplug.Zone{
			{Name: "Home", Channels: []codeplug.ChannelIndex{0, 1, 2}, SelectedChannelA: 0, SelectedChannelB: 1},
		},
	}

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	nameRec, err := img.Read(addrZoneNamesBase, zoneNameRecordSize)
	require.NoError(t, err)
	assert.Equal(t, "Home", fixedstring.Decode(nameRec[:ZoneNameWidth]))

	members, err := img.Read(addrZoneChannelListBase, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0xFF, 0xFF}, members)

	zoneMask, err := readMask(img, zoneMaskSpec)
	require.NoError(t, err)
	assert.True(t, zoneMask.Test(0), "zone bitmap bit 0 set")
}

// TestS4ScanListSentinelBytes checks spec.md S4's scan-list priority-channel
// sentinel encoding byte-for-byte: priority_ch1 as "current channel"
// (0x0000), priority_ch2 as "off" (0xFFFF), and member channel 0 encoded
// plain zero-based (0x0000), distinct from the priority-slot's shifted
// convention.
func TestS4ScanListSentinelBytes(t *testing.T) {
	s := codeplug.ScanList{
		Name:    "ScanAll",
		Members: []codeplug.ChannelIndex{0, 1},
		P1:      codeplug.ScanChannel{Kind: codeplug.ScanChannelCurrent},
		P2:      codeplug.ScanChannel{Kind: codeplug.ScanChannelOff},
	}

	rec, err := encodeScanListRecord(s)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x00, 0x00}, rec[slOffP1:slOffP1+2], "priority_ch1 = current channel")
	assert.Equal(t, []byte{0xFF, 0xFF}, rec[slOffP2:slOffP2+2], "priority_ch2 = off")
	assert.Equal(t, []byte{0x00, 0x00}, rec[slOffMembers:slOffMembers+2], "first member = channel index 0")
	assert.Equal(t, []byte{0x01, 0x00}, rec[slOffMembers+2:slOffMembers+4], "second member = channel index 1")
	assert.Equal(t, []byte{0xFF, 0xFF}, rec[slOffMembers+4:slOffMembers+6], "unused member slot padded")

	got := decodeScanListRecord(rec)
	assert.Equal(t, codeplug.ScanChannelCurrent, got.P1.Kind)
	assert.Equal(t, codeplug.ScanChannelOff, got.P2.Kind)
	assert.Equal(t, []codeplug.ChannelIndex{0, 1}, got.Members)
}

// TestS4ScanListPriorityRefShift checks that a priority-slot channel
// reference is stored 1-based (n+1), unlike a plain member-list entry.
func TestS4ScanListPriorityRefShift(t *testing.T) {
	s := codeplug.ScanList{
		Name: "Shifted",
		P1:   codeplug.ScanChannel{Kind: codeplug.ScanChannelRef, Channel: 0},
	}
	rec, err := encodeScanListRecord(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00}, rec[slOffP1:slOffP1+2], "channel 0 reference stored as 0x0001, not 0x0000")

	got := decodeScanListRecord(rec)
	assert.Equal(t, codeplug.ScanChannelRef, got.P1.Kind)
	assert.Equal(t, codeplug.ChannelIndex(0), got.P1.Channel)
}

// TestS6DanglingScanListMemberDiagnostic checks spec.md S6's scenario: a
// scan list member referencing a channel index far beyond the channel count
// decodes without error, drops the dangling member, and reports exactly one
// invalid-index diagnostic for it.
func TestS6DanglingScanListMemberDiagnostic(t *testing.T) {
	cfg := &codeplug.Config{
		RadioName: "N0CALL",
		Contacts: []codeplug.Contact{
			{CallType: codeplug.CallGroup, ID: 1, Name: "TG1"},
			{CallType: codeplug.CallPrivate, ID: 2, Name: "Me"},
		},
		Channels: []codeplug.Channel{
			{Name: "CH1", RxFrequencyHz: 146520000, Contact: 0, RadioID: codeplug.NoRadioID, ScanList: 0, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
			{Name: "CH2", RxFrequencyHz: 146540000, Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID, ScanList: 0, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
			{Name: "CH3", RxFrequencyHz: 146560000, Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID, ScanList: 0, GroupList: codeplug.NoGroupList, GpsSystem: codeplug.NoGpsSystem},
		},
		Zones: []codeplug.Zone{
			{Name: "Home", Channels: []codeplug.ChannelIndex{0, 1, 2}, SelectedChannelA: 0, SelectedChannelB: 1},
		},
		ScanLists: []codeplug.ScanList{
			{Name: "ScanAll", Members: []codeplug.ChannelIndex{0, 1}, P1: codeplug.ScanChannel{Kind: codeplug.ScanChannelCurrent}},
		},
	}

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	// Corrupt the already-written scan list's member list directly, as if
	// the device itself had produced a dangling reference: append a member
	// pointing at channel index 2500, far past any channel this codeplug
	// declares.
	rec, err := img.Read(scanlistAddress(0), scanlistRecordSize)
	require.NoError(t, err)
	putUint16LE(rec, slOffMembers+2*2, 2500)
	require.NoError(t, img.Write(scanlistAddress(0), rec))

	got, diags, err := Decode(img, nil)
	require.NoError(t, err)

	var scanListDiags []codeplug.Diagnostic
	for _, d := range diags {
		if d.RecordType == "ScanList" {
			scanListDiags = append(scanListDiags, d)
		}
	}
	require.Len(t, scanListDiags, 1, "exactly one diagnostic for the dangling member")
	assert.Equal(t, codeplug.InvalidIndex, scanListDiags[0].Kind)
	assert.Contains(t, scanListDiags[0].Message, "2500")

	require.Len(t, got.ScanLists, 1)
	assert.Equal(t, []codeplug.ChannelIndex{0, 1}, got.ScanLists[0].Members, "dangling member dropped, valid ones kept")
}
