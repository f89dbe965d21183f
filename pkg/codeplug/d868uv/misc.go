package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/fixedstring"
)

// encodeDTMFEntry / decodeDTMFEntry round-trip one of the 16 DTMF
// speed-dial slots (SPEC_FULL.md §C's dtmf_numbers_t), a 16-byte fixed
// digit string per slot.
func encodeDTMFEntry(number string) []byte {
	b := make([]byte, 16)
	fixedstring.Encode(b, number)
	return b
}

func decodeDTMFEntry(b []byte) string {
	return fixedstring.Decode(b)
}

// analog_quick_call_t (2 bytes): Type + table index.
func encodeQuickCall(q codeplug.QuickCall) []byte {
	return []byte{byte(q.Type), q.Index}
}

func decodeQuickCall(b []byte) codeplug.QuickCall {
	return codeplug.QuickCall{Type: codeplug.QuickCallType(b[0]), Index: b[1]}
}

// hotkey_t (0x30 bytes), grounded on d868uv_codeplug.hh's hotkey_t:
//
//	0x00  type (0=call, 1=menu)
//	0x01  menuItem
//	0x02  callKind
//	0x03-0x06  callTarget, int32 LE
//	0x07-0x0A  content, int32 LE
//	0x0B-0x2F  reserved
const (
	hkOffType       = 0x00
	hkOffMenuItem   = 0x01
	hkOffCallKind   = 0x02
	hkOffCallTarget = 0x03
	hkOffContent    = 0x07
)

func encodeHotKey(h codeplug.HotKey) []byte {
	b := make([]byte, hotkeyRecordSize)
	b[hkOffType] = byte(h.Type)
	b[hkOffMenuItem] = h.MenuItem
	b[hkOffCallKind] = byte(h.CallKind)
	putUint32LE(b, hkOffCallTarget, uint32(h.CallTarget))
	putUint32LE(b, hkOffContent, uint32(h.Content))
	return b
}

func decodeHotKey(b []byte) codeplug.HotKey {
	return codeplug.HotKey{
		Type:       codeplug.HotKeyType(b[hkOffType]),
		MenuItem:   b[hkOffMenuItem],
		CallKind:   codeplug.HotKeyCallKind(b[hkOffCallKind]),
		CallTarget: int32(getUint32LE(b, hkOffCallTarget)),
		Content:    int32(getUint32LE(b, hkOffContent)),
	}
}

// analog_alarm_setting_t (6 bytes).
func encodeAlarmSettings(a codeplug.AlarmSettings) []byte {
	return []byte{
		byte(a.Action), byte(a.SignalType), a.EmergencyIDIndex,
		a.AlarmTimeSec, a.TXDurationSec, a.RXDurationSec,
	}
}

func decodeAlarmSettings(b []byte) codeplug.AlarmSettings {
	return codeplug.AlarmSettings{
		Action:           codeplug.AlarmAction(b[0]),
		SignalType:       codeplug.AlarmSignalType(b[1]),
		EmergencyIDIndex: b[2],
		AlarmTimeSec:     b[3],
		TXDurationSec:    b[4],
		RXDurationSec:    b[5],
	}
}
