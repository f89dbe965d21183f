package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// Priority-slot raw sentinels (spec.md §4.3/S4): 0x0000 means "current
// channel", 0xFFFF means "off", and any other value is a 1-based channel
// reference (n+1, so channel index 0 round-trips through 0x0001 rather than
// colliding with the "current channel" sentinel).
const (
	scanChanOffRaw     uint16 = 0xFFFF
	scanChanCurrentRaw uint16 = 0x0000
)

// scanlist_t layout (144 bytes), grounded on d868uv_codeplug.hh's scanlist_t:
//
//	0x00-0x0F  name, 16 bytes
//	0x10       priority(2b) revert(3b)
//	0x11-0x12  P1 raw, uint16 LE
//	0x13-0x14  P2 raw, uint16 LE
//	0x15-0x16  lookBackA, uint16 LE (tenths of a second)
//	0x17-0x18  lookBackB, uint16 LE
//	0x19-0x1A  dropoutDelay, uint16 LE
//	0x1B-0x1C  dwell, uint16 LE
//	0x1D-0x80  up to MaxScanMembers channel indices, uint16 LE, 0xFFFF pads
//	0x81-0x8F  reserved
const (
	slOffName      = 0x00
	slOffFlags     = 0x10
	slOffP1        = 0x11
	slOffP2        = 0x13
	slOffLookBackA = 0x15
	slOffLookBackB = 0x17
	slOffDropout   = 0x19
	slOffDwell     = 0x1B
	slOffMembers   = 0x1D
)

func encodeScanChannelRaw(sc codeplug.ScanChannel) uint16 {
	switch sc.Kind {
	case codeplug.ScanChannelOff:
		return scanChanOffRaw
	case codeplug.ScanChannelCurrent:
		return scanChanCurrentRaw
	default:
		return uint16(sc.Channel) + 1
	}
}

func decodeScanChannelRaw(raw uint16) codeplug.ScanChannel {
	switch raw {
	case scanChanOffRaw:
		return codeplug.ScanChannel{Kind: codeplug.ScanChannelOff}
	case scanChanCurrentRaw:
		return codeplug.ScanChannel{Kind: codeplug.ScanChannelCurrent}
	default:
		return codeplug.ScanChannel{Kind: codeplug.ScanChannelRef, Channel: codeplug.ChannelIndex(raw - 1)}
	}
}

func encodeScanListRecord(s codeplug.ScanList) ([]byte, error) {
	if len(s.Members) > MaxScanMembers {
		return nil, codeplug.NewError(codeplug.CapacityExceeded, "ScanList", 0, 0, "too many members")
	}
	b := make([]byte, scanlistRecordSize)
	fixedstring.Encode(b[slOffName:slOffName+ScanNameWidth], s.Name)
	setBits(b, slOffFlags, 0, 2, uint8(s.Priority))
	setBits(b, slOffFlags, 2, 3, uint8(s.Revert))
	putUint16LE(b, slOffP1, encodeScanChannelRaw(s.P1))
	putUint16LE(b, slOffP2, encodeScanChannelRaw(s.P2))
	putUint16LE(b, slOffLookBackA, s.LookBackA)
	putUint16LE(b, slOffLookBackB, s.LookBackB)
	putUint16LE(b, slOffDropout, s.DropoutDelay)
	putUint16LE(b, slOffDwell, s.Dwell)
	for i := 0; i < MaxScanMembers; i++ {
		off := slOffMembers + i*2
		if i < len(s.Members) {
			putUint16LE(b, off, uint16(s.Members[i]))
		} else {
			putUint16LE(b, off, NoChannelRaw)
		}
	}
	return b, nil
}

func decodeScanListRecord(b []byte) codeplug.ScanList {
	s := codeplug.ScanList{
		Name:         fixedstring.Decode(b[slOffName : slOffName+ScanNameWidth]),
		Priority:     codeplug.PriorityMode(getBits(b, slOffFlags, 0, 2)),
		Revert:       codeplug.RevertChannelMode(getBits(b, slOffFlags, 2, 3)),
		P1:           decodeScanChannelRaw(getUint16LE(b, slOffP1)),
		P2:           decodeScanChannelRaw(getUint16LE(b, slOffP2)),
		LookBackA:    getUint16LE(b, slOffLookBackA),
		LookBackB:    getUint16LE(b, slOffLookBackB),
		DropoutDelay: getUint16LE(b, slOffDropout),
		Dwell:        getUint16LE(b, slOffDwell),
	}
	for i := 0; i < MaxScanMembers; i++ {
		off := slOffMembers + i*2
		raw := getUint16LE(b, off)
		if raw == NoChannelRaw {
			continue
		}
		s.Members = append(s.Members, codeplug.ChannelIndex(raw))
	}
	return s
}
