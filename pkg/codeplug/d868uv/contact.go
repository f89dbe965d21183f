package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/bcd"
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// contact_t layout (100 bytes), grounded on d868uv_codeplug.hh's contact_t:
//
//	0x00-0x03  DMR ID, BCD8 big-endian
//	0x04       flags: callType(2b), alert(2b)
//	0x05-0x14  name, 16 bytes
//	0x15-0x63  reserved
const (
	ctOffID    = 0x00
	ctOffFlags = 0x04
	ctOffName  = 0x05
)

func encodeContactRecord(c codeplug.Contact) ([]byte, error) {
	b := make([]byte, contactRecordSize)
	if c.ID >= 100000000 {
		return nil, codeplug.NewError(codeplug.InvalidIndex, "Contact", 0, 0, "DMR ID out of BCD range")
	}
	bcd.EncodeBE(b[ctOffID:ctOffID+4], uint64(c.ID))
	setBits(b, ctOffFlags, 0, 2, uint8(c.CallType))
	setBits(b, ctOffFlags, 2, 2, uint8(c.Alert))
	fixedstring.Encode(b[ctOffName:ctOffName+ContactNameWidth], c.Name)
	return b, nil
}

func decodeContactRecord(b []byte) codeplug.Contact {
	var c codeplug.Contact
	c.ID = uint32(bcd.DecodeBE(b[ctOffID : ctOffID+4]))
	c.CallType = codeplug.CallType(getBits(b, ctOffFlags, 0, 2))
	c.Alert = codeplug.AlertType(getBits(b, ctOffFlags, 2, 2))
	c.Name = fixedstring.Decode(b[ctOffName : ctOffName+ContactNameWidth])
	return c
}
