package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/bcd"
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// freqQuantumHz is the on-wire unit of channel_t's rx_frequency field: an
// 8-digit BCD count of 10 Hz steps, not raw Hz (spec.md §4.3/S1: 439.000 MHz
// -> BCD 43 90 00 00 = 43900000, i.e. 439000000 Hz / 10). tx_offset has no
// such quantum -- spec.md's S1 vector encodes a -7.600 MHz offset as BCD
// `07 60 00 00` = 7600000, the raw Hz magnitude with no division -- so it is
// BCD-encoded directly.
const freqQuantumHz = 10

// channel_t layout (64 bytes), grounded on
// original_source/lib/d868uv_codeplug.hh's channel_t and pinned exactly by
// spec.md's S1 worked example:
//
//	0x00-0x03  rx_frequency   BCD8 big-endian, 10 Hz units
//	0x04-0x07  tx_offset      BCD8 magnitude, raw Hz (no quantum); sign at 0x08 bit 2
//	0x08       bits 0-1 channel_mode, bit 2 repeater-offset-negative,
//	           bits 3-4 power, bit 5 bandwidth, bits 6-7 unused
//	0x09       bit 0 rx_ctcss, bit 1 rx_dcs, bit 2 tx_ctcss, bit 3 tx_dcs,
//	           bit 4 reverse, bit 5 rx_only, bit 6 call_confirm, bit 7 talkaround
//	0x0A       ctcss_transmit index (0-50, 51=custom)
//	0x0B       ctcss_receive index
//	0x0C-0x0D  dcs_transmit, uint16 LE
//	0x0E-0x0F  dcs_receive, uint16 LE
//	0x10-0x11  custom_ctcss, uint16 big-endian, tenths of a hertz
//	0x12       tone2_decode
//	0x13       reserved
//	0x14-0x17  contact_index, uint32 LE, 0xFFFFFFFF = NoContact
//	0x18       id_index (radio ID), 0xFF = NoRadioID
//	0x19       bit 4 squelch_mode
//	0x1A       bits 0-1 tx_permit, bits 4-5 opt_signal
//	0x1B       scan_list_index, 0xFF = NoScanList
//	0x1C       group_list_index, 0xFF = NoGroupList
//	0x1D       id_2tone
//	0x1E       id_5tone
//	0x1F       id_dtmf
//	0x20       color_code (0-15, full byte)
//	0x21       bit 0 slot2 (timeslot), bit 1 sms_confirm, bit 2 simplex_tdma,
//	           bit 4 tdma_adaptive, bit 5 rx_gps, bit 6 enh_encryption,
//	           bit 7 work_alone
//	0x22       reserved
//	0x23-0x32  name, 16 bytes
//	0x33       reserved (pad)
//	0x34       bit 0 rangeing, bit 1 through_mode, bit 2 data_ack_forbit
//	0x35       aprs_report, full byte (0x00=off, 0x01=on)
//	0x36       gps_system index, 0xFF = NoGpsSystem
//	0x37-0x39  reserved
//	0x3A       dmr_encryption
//	0x3B       bit 0 multiple_keys, bit 1 random_key, bit 2 sms_forbid
//	0x3C-0x3F  reserved
const (
	chOffRxFreq      = 0x00
	chOffTxOffset    = 0x04
	chOffFlags8      = 0x08
	chOffFlags9      = 0x09
	chOffCtcssTx     = 0x0A
	chOffCtcssRx     = 0x0B
	chOffDcsTx       = 0x0C
	chOffDcsRx       = 0x0E
	chOffCustomCTCSS = 0x10
	chOffTone2Slot   = 0x12
	chOffContact     = 0x14
	chOffRadioID     = 0x18
	chOffSquelch     = 0x19
	chOffTxPermitOpt = 0x1A
	chOffScanList    = 0x1B
	chOffGroupList   = 0x1C
	chOffID2Tone     = 0x1D
	chOffID5Tone     = 0x1E
	chOffIDDTMF      = 0x1F
	chOffColorCode   = 0x20
	chOffFlags33     = 0x21
	chOffName        = 0x23
	chOffFlags52     = 0x34
	chOffAPRS        = 0x35
	chOffGpsSystem   = 0x36
	chOffDMREnc      = 0x3A
	chOffFlags59     = 0x3B
)

const maxBCD8 = 100000000 // 8 BCD digits

func encodeChannelRecord(c codeplug.Channel, contactIdx func(codeplug.ContactIndex) uint32) ([]byte, error) {
	b := make([]byte, channelRecordSize)

	rxQuantum := uint64(c.RxFrequencyHz) / freqQuantumHz
	if rxQuantum >= maxBCD8 {
		return nil, codeplug.NewError(codeplug.InvalidFrequency, "Channel", 0, 0, "rx frequency out of BCD range")
	}
	bcd.EncodeBE(b[chOffRxFreq:chOffRxFreq+4], rxQuantum)

	offsetMag := c.TxOffsetHz
	negative := offsetMag < 0
	if negative {
		offsetMag = -offsetMag
	}
	if uint64(offsetMag) >= maxBCD8 {
		return nil, codeplug.NewError(codeplug.InvalidFrequency, "Channel", 0, 0, "tx offset out of BCD range")
	}
	bcd.EncodeBE(b[chOffTxOffset:chOffTxOffset+4], uint64(offsetMag))

	setBits(b, chOffFlags8, 0, 2, uint8(c.Mode))
	setBit(b, chOffFlags8, 2, negative)
	setBits(b, chOffFlags8, 3, 2, uint8(c.Power))
	setBit(b, chOffFlags8, 5, c.Bandwidth == codeplug.Bandwidth25kHz)

	setBit(b, chOffFlags9, 4, c.ReverseBurst)
	setBit(b, chOffFlags9, 5, c.RxOnly)
	setBit(b, chOffFlags9, 6, c.CallConfirm)
	setBit(b, chOffFlags9, 7, c.TalkAround)

	rxCustom := encodeToneField(b, chOffCtcssRx, chOffDcsRx, chOffFlags9, 0, 1, c.RxTone)
	txCustom := encodeToneField(b, chOffCtcssTx, chOffDcsTx, chOffFlags9, 2, 3, c.TxTone)
	if rxCustom || txCustom {
		putUint16BE(b, chOffCustomCTCSS, c.CustomCTCSSTenthsHz)
	}

	b[chOffTone2Slot] = c.Tone2DecodeSlot

	putUint32LE(b, chOffContact, contactIdx(c.Contact))
	b[chOffRadioID] = index8(int(c.RadioID), NoRadioIDRaw)
	setBits(b, chOffSquelch, 4, 1, uint8(c.SquelchMode))

	setBits(b, chOffTxPermitOpt, 0, 2, uint8(c.TxPermit))
	setBits(b, chOffTxPermitOpt, 4, 2, uint8(c.OptSignaling))

	b[chOffScanList] = index8(int(c.ScanList), NoScanListRaw)
	b[chOffGroupList] = index8(int(c.GroupList), NoGroupListRaw)
	b[chOffID2Tone] = c.ID2Tone
	b[chOffID5Tone] = c.ID5Tone
	b[chOffIDDTMF] = c.IDDTMF

	b[chOffColorCode] = c.ColorCode

	setBit(b, chOffFlags33, 0, c.Timeslot == codeplug.Timeslot2)
	setBit(b, chOffFlags33, 1, c.SMSConfirm)
	setBit(b, chOffFlags33, 2, c.SimplexTDMA)
	setBit(b, chOffFlags33, 4, c.TDMAAdaptive)
	setBit(b, chOffFlags33, 5, c.RxGPS)
	setBit(b, chOffFlags33, 6, c.EnhEncryption)
	setBit(b, chOffFlags33, 7, c.WorkAlone)

	fixedstring.Encode(b[chOffName:chOffName+ChannelNameWidth], c.Name)

	setBit(b, chOffFlags52, 0, c.Ranging)
	setBit(b, chOffFlags52, 1, c.ThroughMode)
	setBit(b, chOffFlags52, 2, c.DataACKForbid)

	if c.APRSEnable {
		b[chOffAPRS] = 1
	}
	b[chOffGpsSystem] = index8(int(c.GpsSystem), NoGpsSystemRaw)

	b[chOffDMREnc] = c.DMREncryption
	setBit(b, chOffFlags59, 0, c.MultipleKeys)
	setBit(b, chOffFlags59, 1, c.RandomKey)
	setBit(b, chOffFlags59, 2, c.SMSForbid)

	return b, nil
}

func decodeChannelRecord(b []byte, contactOf func(uint32) codeplug.ContactIndex) codeplug.Channel {
	var c codeplug.Channel

	c.RxFrequencyHz = uint32(bcd.DecodeBE(b[chOffRxFreq:chOffRxFreq+4]) * freqQuantumHz)
	mag := int32(bcd.DecodeBE(b[chOffTxOffset:chOffTxOffset+4]))
	c.TxOffsetHz = mag
	if getBit(b, chOffFlags8, 2) {
		c.TxOffsetHz = -mag
	}

	c.Mode = codeplug.ChannelMode(getBits(b, chOffFlags8, 0, 2))
	c.Power = codeplug.Power(getBits(b, chOffFlags8, 3, 2))
	if getBit(b, chOffFlags8, 5) {
		c.Bandwidth = codeplug.Bandwidth25kHz
	} else {
		c.Bandwidth = codeplug.Bandwidth12_5kHz
	}

	c.ReverseBurst = getBit(b, chOffFlags9, 4)
	c.RxOnly = getBit(b, chOffFlags9, 5)
	c.CallConfirm = getBit(b, chOffFlags9, 6)
	c.TalkAround = getBit(b, chOffFlags9, 7)

	customTenthsHz := getUint16BE(b, chOffCustomCTCSS)
	c.RxTone = decodeToneField(b, chOffCtcssRx, chOffDcsRx, chOffFlags9, 0, 1, customTenthsHz)
	c.TxTone = decodeToneField(b, chOffCtcssTx, chOffDcsTx, chOffFlags9, 2, 3, customTenthsHz)
	c.CustomCTCSSTenthsHz = customTenthsHz

	c.Tone2DecodeSlot = b[chOffTone2Slot]

	c.Contact = contactOf(getUint32LE(b, chOffContact))
	c.RadioID = codeplug.RadioIDIndex(signedIndex(b[chOffRadioID], NoRadioIDRaw))
	c.SquelchMode = codeplug.SquelchMode(getBits(b, chOffSquelch, 4, 1))

	c.TxPermit = codeplug.TxPermit(getBits(b, chOffTxPermitOpt, 0, 2))
	c.OptSignaling = codeplug.OptSignaling(getBits(b, chOffTxPermitOpt, 4, 2))

	c.ScanList = codeplug.ScanListIndex(signedIndex(b[chOffScanList], NoScanListRaw))
	c.GroupList = codeplug.GroupListIndex(signedIndex(b[chOffGroupList], NoGroupListRaw))
	c.ID2Tone = b[chOffID2Tone]
	c.ID5Tone = b[chOffID5Tone]
	c.IDDTMF = b[chOffIDDTMF]

	c.ColorCode = b[chOffColorCode]

	if getBit(b, chOffFlags33, 0) {
		c.Timeslot = codeplug.Timeslot2
	} else {
		c.Timeslot = codeplug.Timeslot1
	}
	c.SMSConfirm = getBit(b, chOffFlags33, 1)
	c.SimplexTDMA = getBit(b, chOffFlags33, 2)
	c.TDMAAdaptive = getBit(b, chOffFlags33, 4)
	c.RxGPS = getBit(b, chOffFlags33, 5)
	c.EnhEncryption = getBit(b, chOffFlags33, 6)
	c.WorkAlone = getBit(b, chOffFlags33, 7)

	c.Name = fixedstring.Decode(b[chOffName : chOffName+ChannelNameWidth])

	c.Ranging = getBit(b, chOffFlags52, 0)
	c.ThroughMode = getBit(b, chOffFlags52, 1)
	c.DataACKForbid = getBit(b, chOffFlags52, 2)

	c.APRSEnable = b[chOffAPRS] != 0
	c.GpsSystem = codeplug.GpsSystemIndex(signedIndex(b[chOffGpsSystem], NoGpsSystemRaw))

	c.DMREncryption = b[chOffDMREnc]
	c.MultipleKeys = getBit(b, chOffFlags59, 0)
	c.RandomKey = getBit(b, chOffFlags59, 1)
	c.SMSForbid = getBit(b, chOffFlags59, 2)

	return c
}
