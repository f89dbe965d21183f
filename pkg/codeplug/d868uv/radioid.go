package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/bcd"
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// radioid_t layout (32 bytes): DMR ID (BCD8, little-endian) followed by a
// 16-byte name, grounded on d868uv_codeplug.hh's radioid_t.
const (
	riOffID   = 0x00
	riOffName = 0x04
)

func encodeRadioIDRecord(r codeplug.RadioId) ([]byte, error) {
	b := make([]byte, radioidRecordSize)
	if r.ID >= 100000000 {
		return nil, codeplug.NewError(codeplug.InvalidIndex, "RadioID", 0, 0, "DMR ID out of BCD range")
	}
	bcd.EncodeLE(b[riOffID:riOffID+4], uint64(r.ID))
	fixedstring.Encode(b[riOffName:riOffName+RadioIDNameWidth], r.Name)
	return b, nil
}

func decodeRadioIDRecord(b []byte) codeplug.RadioId {
	return codeplug.RadioId{
		ID:   uint32(bcd.DecodeLE(b[riOffID : riOffID+4])),
		Name: fixedstring.Decode(b[riOffName : riOffName+RadioIDNameWidth]),
	}
}
