package d868uv

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
)

func sampleConfig() *codeplug.Config {
	return &codeplug.Config{
		RadioName: "N0CALL",
		RadioIDs:  []codeplug.RadioId{{ID: 3112345, Name: "Primary"}},
		Contacts: []codeplug.Contact{
			{CallType: codeplug.CallGroup, ID: 91, Name: "TG91 WW", Alert: codeplug.AlertRing},
			{CallType: codeplug.CallPrivate, ID: 3112345, Name: "Me", Alert: codeplug.AlertNone},
		},
		Channels: []codeplug.Channel{
			{
				Name: "REPEATER1", RxFrequencyHz: 439500000, TxOffsetHz: -7600000,
				Mode: codeplug.ModeDigital, Power: codeplug.PowerHigh,
				Contact: 0, RadioID: 0, ScanList: codeplug.NoScanList,
				GroupList: 0, GpsSystem: codeplug.NoGpsSystem, ColorCode: 1,
			},
			{
				Name: "SIMPLEX1", RxFrequencyHz: 446000000, TxOffsetHz: 0,
				Mode: codeplug.ModeAnalog, Power: codeplug.PowerLow,
				Contact: codeplug.NoContact, RadioID: codeplug.NoRadioID,
				ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList,
				GpsSystem: codeplug.NoGpsSystem,
				RxTone:    codeplug.Tone{Kind: codeplug.ToneCTCSS, CTCSSTenthsHz: 885},
				TxTone:    codeplug.Tone{Kind: codeplug.ToneCTCSS, CTCSSTenthsHz: 885},
			},
		},
		GroupLists: []codeplug.GroupList{
			{Name: "Locals", Contacts: []codeplug.ContactIndex{0}},
		},
		Zones: []codeplug.Zone{
			{Name: "Home", Channels: []codeplug.ChannelIndex{0, 1}, SelectedChannelA: 0, SelectedChannelB: 1},
		},
		ScanLists: []codeplug.ScanList{
			{Name: "ScanAll", Members: []codeplug.ChannelIndex{0, 1}, P1: codeplug.ScanChannel{Kind: codeplug.ScanChannelCurrent}},
		},
		Settings: codeplug.Settings{IntroLine1: "HELLO", MicLevel: 3, TOT: 180},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg := sampleConfig()

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	got, diags, err := Decode(img, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)

	require.Len(t, got.Channels, 2)
	assert.Equal(t, cfg.Channels[0].Name, got.Channels[0].Name)
	assert.Equal(t, cfg.Channels[0].RxFrequencyHz, got.Channels[0].RxFrequencyHz)
	assert.Equal(t, cfg.Channels[1].RxTone, got.Channels[1].RxTone)

	require.Len(t, got.Contacts, 2)
	assert.Equal(t, cfg.Contacts[0].Name, got.Contacts[0].Name)
	assert.Equal(t, cfg.Contacts[1].ID, got.Contacts[1].ID)

	require.Len(t, got.GroupLists, 1)
	assert.Equal(t, []codeplug.ContactIndex{0}, got.GroupLists[0].Contacts)

	require.Len(t, got.Zones, 1)
	assert.Equal(t, []codeplug.ChannelIndex{0, 1}, got.Zones[0].Channels)
	assert.Equal(t, codeplug.ChannelIndex(0), got.Zones[0].SelectedChannelA)

	require.Len(t, got.ScanLists, 1)
	assert.Equal(t, codeplug.ScanChannelCurrent, got.ScanLists[0].P1.Kind)

	assert.Equal(t, "HELLO", got.Settings.IntroLine1)
	assert.Equal(t, uint8(180), got.Settings.TOT)
}

func TestDecodeDropsOutOfRangeReferenceAsWarning(t *testing.T) {
	cfg := sampleConfig()
	cfg.Channels[0].Contact = 99 // nonexistent

	img, err := Encode(cfg, nil)
	require.NoError(t, err)

	got, diags, err := Decode(img, nil)
	require.NoError(t, err)
	require.NotEmpty(t, diags)
	assert.Equal(t, codeplug.NoContact, got.Channels[0].Contact)
}

func TestContactIndexIsSortedByKey(t *testing.T) {
	// Listed out of order (raw IDs 300, 100, 200, 100); contact 1 (ID 100, private) and contact 3
	// (ID 100, group) share an ID and must sort as distinct keys differing
	// only in the isGroup bit.
	contacts := []codeplug.Contact{
		{CallType: codeplug.CallGroup, ID: 300},
		{CallType: codeplug.CallPrivate, ID: 100},
		{CallType: codeplug.CallGroup, ID: 200},
		{CallType: codeplug.CallGroup, ID: 100},
	}
	idx := buildContactIndex(contacts)
	require.Len(t, idx, 4*contactMapEntrySize)

	keys := make([]uint32, 4)
	seen := map[uint32]bool{}
	for i := range keys {
		keys[i] = getUint32LE(idx, i*contactMapEntrySize)
		seen[keys[i]] = true
	}
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))
	assert.Len(t, seen, 4, "private and group contacts sharing an ID must not collide")
}

// TestContactMapKeyS1 checks the DMR-ID map key formula against spec.md's
// worked examples S1 (small group ID) and S5 (max 24-bit group ID).
func TestContactMapKeyS1(t *testing.T) {
	assert.Equal(t, uint32(0x00000003), contactMapKey(codeplug.Contact{CallType: codeplug.CallGroup, ID: 1}))
	assert.Equal(t, uint32(0x2CEEE42B), contactMapKey(codeplug.Contact{CallType: codeplug.CallGroup, ID: 16777215}))
}
