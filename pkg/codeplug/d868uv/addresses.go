// Package d868uv implements the AT-D868UV-class binary codeplug codec:
// record layouts, presence masks, the cross-reference linking pass, and the
// encode/decode orchestrator (spec.md §4, §6).
//
// Every address and layout constant here is grounded directly on
// original_source/lib/d868uv_codeplug.hh (the qdmr project's reverse
// engineering of the device), cross-checked against spec.md §6's summary
// table.
package d868uv

import "github.com/n0call/d868uv-codeplug/pkg/image"

// ImageSpan is the full size of the radio's address space a raw dump file
// covers, rounded up past the highest record bank (addrContactMapBase plus
// its 10000*8 B table).
const ImageSpan int64 = 0x04400000

// Capacity limits (spec.md §7 CapacityExceeded).
const (
	MaxChannels    = 4000
	MaxContacts    = 10000
	MaxAnalogContacts = 128
	MaxZones       = 250
	MaxGroupLists  = 250
	MaxScanLists   = 250
	MaxRadioIDs    = 250
	MaxGpsSystems  = 8

	MaxZoneMembers  = 250
	MaxScanMembers  = 50
	MaxGroupMembers = 64

	ChannelNameWidth  = 16
	ContactNameWidth  = 16
	AnalogNameWidth   = 15
	ZoneNameWidth     = 16
	GroupNameWidth    = 16
	ScanNameWidth     = 16
	RadioIDNameWidth  = 16
	RadioNameWidth    = 16
	IntroLineWidth    = 14
	BootPasswordWidth = 8
	AnalogNumberDigits = 14
)

// Record sizes, in bytes.
const (
	channelRecordSize  = 0x40
	contactRecordSize  = 100
	analogRecordSize   = 48
	grouplistRecordSize = 288
	scanlistRecordSize = 144
	radioidRecordSize  = 32
	zoneListSize       = 0x1F4 // 250 * 2 bytes, one zone's channel list
	zoneNameRecordSize = 32
	gpsRecordSize      = 0x10
	generalSettingsSize = 0xD0
	bootSettingsSize   = 0x30
	zoneChannelsSize   = 0x500
	dtmfListSize       = 0x100
	contactMapEntrySize = 8
	hotkeyRecordSize   = 0x30
	messageRecordSize  = 0x100
	statusMessageStride = 0x20
)

// Per-bank record counts.
const (
	channelsPerBank  = 128
	contactsPerBank  = 4
	analogPerBank    = 2
	scanlistsPerBank = 16
)

// Absolute base addresses (spec.md §6).
const (
	addrChannelBankBase   image.Address = 0x00800000
	channelBankStride     image.Address = 0x00040000
	addrVFOA              image.Address = 0x00FC0800
	addrVFOB              image.Address = 0x00FC0840

	addrZoneChannelListBase image.Address = 0x01000000
	zoneChannelListStride   image.Address = 0x200

	addrScanlistBase   image.Address = 0x01080000
	scanlistBankStride image.Address = 0x00040000
	scanlistSlotStride image.Address = 0x200

	addrSMSLinkedList image.Address = 0x01640000
	addrSMSByteMap    image.Address = 0x01640800
	addrSMSBankBase   image.Address = 0x02140000
	smsBankStride     image.Address = 0x00040000

	addrFMChannels   image.Address = 0x02480000
	addrFMVFO        image.Address = 0x02480200
	addrFMBitmap     image.Address = 0x02480210

	addrZoneBitmap     image.Address = 0x024C1300
	addrRadioIDBitmap  image.Address = 0x024C1320
	addrScanlistBitmap image.Address = 0x024C1340
	addrAnalogAlarm    image.Address = 0x024C1400
	addrChannelBitmap  image.Address = 0x024C1500
	addrGpsSystemBitmap image.Address = 0x024C1360
	addrRepeaterOffsets image.Address = 0x024C2000

	addrGeneralSettings image.Address = 0x02500000
	addrZoneChannels    image.Address = 0x02500100
	addrDTMFList        image.Address = 0x02500500
	addrBootSettings    image.Address = 0x02500600
	addrGPSSystemsBase  image.Address = 0x02501000

	addrZoneNamesBase image.Address = 0x02540000

	addrRadioIDsBase image.Address = 0x02580000

	addrAnalogQuickCalls  image.Address = 0x025C0000
	addrStatusMessages    image.Address = 0x025C0100
	addrHotKeysBase       image.Address = 0x025C0500
	addrStatusMsgBitmap   image.Address = 0x025C0B00
	addrGroupListBitmap   image.Address = 0x025C0B10

	addrContactIndexList image.Address = 0x02600000
	addrContactBitmap    image.Address = 0x02640000
	addrContactBankBase  image.Address = 0x02680000
	contactBankStride    image.Address = 0x00040000

	addrAnalogIndexList image.Address = 0x02900000
	addrAnalogByteMap   image.Address = 0x02900100
	addrAnalogBankBase  image.Address = 0x02940000
	analogBankStride    image.Address = 0x00040000 // banks of 2, 48B each -> 96B per bank, but laid out contiguously at this base

	addrGroupListBase image.Address = 0x02980000
	groupListStride   image.Address = 0x200

	addrContactMapBase image.Address = 0x04340000
)

// channelBankAddress returns the base address of the bank holding channel
// index idx, and the offset of the record within that bank.
func channelBankAddress(idx int) (bank image.Address, offset image.Address) {
	bankNo := idx / channelsPerBank
	slot := idx % channelsPerBank
	return addrChannelBankBase + channelBankStride*image.Address(bankNo), image.Address(slot * channelRecordSize)
}

func channelAddress(idx int) image.Address {
	bank, offset := channelBankAddress(idx)
	return bank + offset
}

func contactBankAddress(idx int) (bank image.Address, offset image.Address) {
	bankNo := idx / contactsPerBank
	slot := idx % contactsPerBank
	return addrContactBankBase + contactBankStride*image.Address(bankNo), image.Address(slot * contactRecordSize)
}

func contactAddress(idx int) image.Address {
	bank, offset := contactBankAddress(idx)
	return bank + offset
}

func analogContactAddress(idx int) image.Address {
	bankNo := idx / analogPerBank
	slot := idx % analogPerBank
	// Analog contact banks are packed back-to-back (2 * 48B = 96B per bank)
	// immediately following one another, unlike the other 0x40000-strided
	// banks: the original documents a max span of 0x180B for 128 contacts.
	return addrAnalogBankBase + image.Address(bankNo)*analogPerBank*analogRecordSize + image.Address(slot)*analogRecordSize
}

func groupListAddress(idx int) image.Address {
	return addrGroupListBase + image.Address(idx)*groupListStride
}

func scanlistAddress(idx int) image.Address {
	bankNo := idx / scanlistsPerBank
	slot := idx % scanlistsPerBank
	return addrScanlistBase + scanlistBankStride*image.Address(bankNo) + image.Address(slot)*scanlistSlotStride
}

func radioIDAddress(idx int) image.Address {
	return addrRadioIDsBase + image.Address(idx)*radioidRecordSize
}

func zoneChannelListAddress(idx int) image.Address {
	return addrZoneChannelListBase + image.Address(idx)*zoneChannelListStride
}

func zoneNameAddress(idx int) image.Address {
	return addrZoneNamesBase + image.Address(idx)*zoneNameRecordSize
}

func hotkeyAddress(idx int) image.Address {
	return addrHotKeysBase + image.Address(idx)*hotkeyRecordSize
}

func statusMessageAddress(idx int) image.Address {
	return addrStatusMessages + image.Address(idx)*statusMessageStride
}

func gpsSystemAddress(idx int) image.Address {
	return addrGPSSystemsBase + image.Address(idx)*gpsRecordSize
}

func dtmfEntryAddress(idx int) image.Address {
	return addrDTMFList + image.Address(idx)*16
}

func quickCallAddress(idx int) image.Address {
	return addrAnalogQuickCalls + image.Address(idx)*2
}

func repeaterOffsetAddress(idx int) image.Address {
	return addrRepeaterOffsets + image.Address(idx)*4
}

func fmChannelAddress(idx int) image.Address {
	return addrFMChannels + image.Address(idx)*4
}

const messagesPerBank = int(smsBankStride) / messageRecordSize

func messageAddress(idx int) image.Address {
	bankNo := idx / messagesPerBank
	slot := idx % messagesPerBank
	return addrSMSBankBase + smsBankStride*image.Address(bankNo) + image.Address(slot*messageRecordSize)
}
