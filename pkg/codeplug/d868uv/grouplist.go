package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// grouplist_t layout (288 bytes): name (16B) followed by up to
// MaxGroupMembers 16-bit contact-list indices (0xFFFF terminates/pads the
// unused tail), grounded on d868uv_codeplug.hh's grouplist_t member array.
const (
	glOffName    = 0x00
	glOffMembers = 0x10
)

func encodeGroupListRecord(g codeplug.GroupList) ([]byte, error) {
	if len(g.Contacts) > MaxGroupMembers {
		return nil, codeplug.NewError(codeplug.CapacityExceeded, "GroupList", 0, 0, "too many members")
	}
	b := make([]byte, grouplistRecordSize)
	fixedstring.Encode(b[glOffName:glOffName+GroupNameWidth], g.Name)
	for i := 0; i < MaxGroupMembers; i++ {
		off := glOffMembers + i*2
		if i < len(g.Contacts) {
			putUint16LE(b, off, index16(int(g.Contacts[i]), NoContactRaw16))
		} else {
			putUint16LE(b, off, NoContactRaw16)
		}
	}
	return b, nil
}

func decodeGroupListRecord(b []byte) codeplug.GroupList {
	g := codeplug.GroupList{Name: fixedstring.Decode(b[glOffName : glOffName+GroupNameWidth])}
	for i := 0; i < MaxGroupMembers; i++ {
		off := glOffMembers + i*2
		raw := getUint16LE(b, off)
		if raw == NoContactRaw16 {
			continue
		}
		g.Contacts = append(g.Contacts, codeplug.ContactIndex(signedIndex16(raw, NoContactRaw16)))
	}
	return g
}
