package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
	"github.com/n0call/d868uv-codeplug/pkg/image"
)

// A zone is split across three regions, grounded on d868uv_codeplug.hh:
//   - a name record (zoneNameRecordSize bytes, at addrZoneNamesBase)
//   - a member channel-index list (zoneListSize bytes, at
//     addrZoneChannelListBase), up to MaxZoneMembers uint16 LE entries,
//     0xFFFF-padded
//   - a selected-channel-A/B entry (SPEC_FULL.md §C's zone_channels_t,
//     supplemented from original_source/: the radio remembers which
//     channel within each zone was last selected on VFO A and B)
const selectedChannelsEntrySize = 4

func encodeZoneNameRecord(z codeplug.Zone) []byte {
	b := make([]byte, zoneNameRecordSize)
	fixedstring.Encode(b[:ZoneNameWidth], z.Name)
	return b
}

func decodeZoneNameRecord(b []byte) string {
	return fixedstring.Decode(b[:ZoneNameWidth])
}

func encodeZoneMemberList(z codeplug.Zone) ([]byte, error) {
	if len(z.Channels) > MaxZoneMembers {
		return nil, codeplug.NewError(codeplug.CapacityExceeded, "Zone", 0, 0, "too many member channels")
	}
	b := make([]byte, zoneListSize)
	for i := 0; i < MaxZoneMembers; i++ {
		off := i * 2
		if i < len(z.Channels) {
			putUint16LE(b, off, uint16(z.Channels[i]))
		} else {
			putUint16LE(b, off, NoChannelRaw)
		}
	}
	return b, nil
}

func decodeZoneMemberList(b []byte) []codeplug.ChannelIndex {
	var channels []codeplug.ChannelIndex
	for i := 0; i < MaxZoneMembers; i++ {
		raw := getUint16LE(b, i*2)
		if raw == NoChannelRaw {
			continue
		}
		channels = append(channels, codeplug.ChannelIndex(raw))
	}
	return channels
}

func encodeZoneSelectedChannels(z codeplug.Zone) []byte {
	b := make([]byte, selectedChannelsEntrySize)
	putUint16LE(b, 0, index16(int(z.SelectedChannelA), NoChannelRaw))
	putUint16LE(b, 2, index16(int(z.SelectedChannelB), NoChannelRaw))
	return b
}

func decodeZoneSelectedChannels(b []byte) (a, c codeplug.ChannelIndex) {
	return codeplug.ChannelIndex(signedIndex16(getUint16LE(b, 0), NoChannelRaw)),
		codeplug.ChannelIndex(signedIndex16(getUint16LE(b, 2), NoChannelRaw))
}

func zoneSelectedChannelsAddress(idx int) image.Address {
	return addrZoneChannels + image.Address(idx*selectedChannelsEntrySize)
}
