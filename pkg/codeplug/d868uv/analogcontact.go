package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// analog_contact_t layout (48 bytes), grounded on d868uv_codeplug.hh:
//
//	0x00-0x0D  dialed number digits, 14-byte fixed ASCII
//	0x0E-0x1C  name, 15 bytes
//	0x1D-0x2F  reserved
const (
	acOffNumber = 0x00
	acOffName   = 0x0E
)

func encodeAnalogContactRecord(c codeplug.AnalogContact) []byte {
	b := make([]byte, analogRecordSize)
	fixedstring.Encode(b[acOffNumber:acOffNumber+AnalogNumberDigits], c.Number)
	fixedstring.Encode(b[acOffName:acOffName+AnalogNameWidth], c.Name)
	return b
}

func decodeAnalogContactRecord(b []byte) codeplug.AnalogContact {
	return codeplug.AnalogContact{
		Number: fixedstring.Decode(b[acOffNumber : acOffNumber+AnalogNumberDigits]),
		Name:   fixedstring.Decode(b[acOffName : acOffName+AnalogNameWidth]),
	}
}
